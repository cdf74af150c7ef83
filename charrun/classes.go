package charrun

// class is one row of the per-kind dispatch table.
type class struct {
	name       string          // wire name, see Kind.String
	token      string          // fixed literal prefix of the serialized token
	expr       string          // Go regexp character class
	member     func(rune) bool // membership test for run kinds
	population []rune          // draw population for run kinds
}

var (
	digits     = runeRange('0', '9')
	lowercase  = runeRange('a', 'z')
	uppercase  = runeRange('A', 'Z')
	letters    = concat(lowercase, uppercase)
	alnum      = concat(lowercase, uppercase, digits)
	printable  = runeRange(' ', '~') // 95 printable ASCII runes
	anyMember  = func(rune) bool { return true }
	noneMember = func(rune) bool { return false }
)

var classes = [numKinds]class{
	Digit: {
		name: "digit", token: `\d`, expr: `[0-9]`,
		member: isDigit, population: digits,
	},
	AlphaNumeric: {
		name: "alphanumeric", token: `[a-zA-Z0-9]`, expr: `[a-zA-Z0-9]`,
		member: func(r rune) bool { return isLower(r) || isUpper(r) || isDigit(r) }, population: alnum,
	},
	Lowercase: {
		name: "lowercase", token: `[a-z]`, expr: `[a-z]`,
		member: isLower, population: lowercase,
	},
	Uppercase: {
		name: "uppercase", token: `[A-Z]`, expr: `[A-Z]`,
		member: isUpper, population: uppercase,
	},
	Letters: {
		name: "letters", token: `[a-zA-Z]`, expr: `[a-zA-Z]`,
		member: func(r rune) bool { return isLower(r) || isUpper(r) }, population: letters,
	},
	SingleCharSet: {
		name: "single_char_set", member: noneMember,
	},
	AnySet: {
		name: "any", token: `.`, expr: `(?s:.)`,
		member: anyMember, population: printable,
	},
}

// fixedTokens lists run-kind literals longest first, so that a prefix scan
// never mistakes "[a-zA-Z0-9]" for "[a-zA-Z]".
var fixedTokens = []Kind{AlphaNumeric, Letters, Lowercase, Uppercase, Digit}

func isDigit(r rune) bool     { return r >= '0' && r <= '9' }
func isLower(r rune) bool     { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool     { return r >= 'A' && r <= 'Z' }
func isPrintable(r rune) bool { return r >= ' ' && r <= '~' }

func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}

	return out
}

func concat(parts ...[]rune) []rune {
	var out []rune
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
