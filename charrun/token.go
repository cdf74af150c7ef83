package charrun

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRegexpRepeat is the largest repeat count RE2 accepts in {m,n}.
const maxRegexpRepeat = 1000

// setEscapes are the runes written with a leading backslash inside [...].
const setEscapes = `\[]-^{}`

// Token returns the compact single-line serialization of the element:
//
//	\d{m,n}  [a-zA-Z0-9]{m,n}  [a-z]{m,n}  [A-Z]{m,n}  [a-zA-Z]{m,n}
//	[c1c2…]                    (SingleCharSet)
//	.[extras]{m,n}             (AnySet; bounds always written)
//
// Run kinds omit {1,1}. FractionUsed is not part of the token.
func (e Element) Token() string {
	var sb strings.Builder
	switch e.Kind {
	case SingleCharSet:
		writeSet(&sb, e.Choices)
		return sb.String()
	case AnySet:
		sb.WriteString(classes[AnySet].token)
		if len(e.Extra) > 0 {
			writeSet(&sb, e.Extra)
		}
		fmt.Fprintf(&sb, "{%d,%d}", e.MinRepeat, e.MaxRepeat)
		return sb.String()
	}

	sb.WriteString(classes[e.Kind].token)
	if e.MinRepeat != 1 || e.MaxRepeat != 1 {
		fmt.Fprintf(&sb, "{%d,%d}", e.MinRepeat, e.MaxRepeat)
	}

	return sb.String()
}

// String implements fmt.Stringer; it returns Token().
func (e Element) String() string { return e.Token() }

// ParseToken consumes exactly one token from the front of s and returns the
// element (FractionUsed 1) and the unconsumed rest of s.
//
// Errors: ErrUnrecognizedToken when no kind's literal prefix matches, a set
// or bound is malformed, or the bounds are inverted.
func ParseToken(s string) (Element, string, error) {
	for _, k := range fixedTokens {
		if strings.HasPrefix(s, classes[k].token) {
			return parseBounds(New(k), s[len(classes[k].token):])
		}
	}

	switch {
	case strings.HasPrefix(s, classes[AnySet].token):
		e := New(AnySet)
		rest := s[len(classes[AnySet].token):]
		if strings.HasPrefix(rest, "[") {
			extra, after, err := readSet(rest)
			if err != nil {
				return Element{}, s, err
			}
			e.Extra, rest = extra, after
		}
		return parseBounds(e, rest)

	case strings.HasPrefix(s, "["):
		choices, rest, err := readSet(s)
		if err != nil {
			return Element{}, s, err
		}
		return NewChoices(choices...), rest, nil
	}

	return Element{}, s, fmt.Errorf("%w at %q", ErrUnrecognizedToken, s)
}

// parseBounds reads an optional {m,n} or {n} suffix; absent means {1,1}.
func parseBounds(e Element, s string) (Element, string, error) {
	if !strings.HasPrefix(s, "{") {
		return e, s, nil
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return Element{}, s, fmt.Errorf("%w: unterminated bounds in %q", ErrUnrecognizedToken, s)
	}

	lo, hi, found := strings.Cut(s[1:end], ",")
	minRep, err := strconv.Atoi(lo)
	if err != nil {
		return Element{}, s, fmt.Errorf("%w: bad bound %q", ErrUnrecognizedToken, lo)
	}
	maxRep := minRep
	if found {
		if maxRep, err = strconv.Atoi(hi); err != nil {
			return Element{}, s, fmt.Errorf("%w: bad bound %q", ErrUnrecognizedToken, hi)
		}
	}
	if minRep < 0 || minRep > maxRep {
		return Element{}, s, fmt.Errorf("%w: bounds {%d,%d}", ErrUnrecognizedToken, minRep, maxRep)
	}
	e.MinRepeat, e.MaxRepeat = minRep, maxRep

	return e, s[end+1:], nil
}

func writeSet(sb *strings.Builder, rs []rune) {
	sb.WriteByte('[')
	for _, r := range rs {
		switch {
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		case strings.ContainsRune(setEscapes, r):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(']')
}

// readSet parses "[...]" at the front of s; s must start with '['.
func readSet(s string) ([]rune, string, error) {
	rs := []rune(s)
	var out []rune
	for i := 1; i < len(rs); i++ {
		switch rs[i] {
		case ']':
			if len(out) == 0 {
				return nil, s, fmt.Errorf("%w: empty set", ErrUnrecognizedToken)
			}
			return sortedUnique(out), string(rs[i+1:]), nil
		case '\\':
			i++
			if i == len(rs) {
				return nil, s, fmt.Errorf("%w: dangling escape", ErrUnrecognizedToken)
			}
			switch rs[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				out = append(out, rs[i])
			}
		default:
			out = append(out, rs[i])
		}
	}

	return nil, s, fmt.Errorf("%w: unterminated set in %q", ErrUnrecognizedToken, s)
}

// Regexp returns a Go regexp fragment matching one occurrence of the
// element. Bounds are floored to {1,1} when MaxRepeat is 0; optional
// elements (FractionUsed < 1) are wrapped in (?:…)?.
func (e Element) Regexp() string {
	var sb strings.Builder
	if e.FractionUsed < 1 {
		sb.WriteString("(?:")
	}

	switch e.Kind {
	case SingleCharSet:
		sb.WriteByte('[')
		for _, r := range e.Choices {
			fmt.Fprintf(&sb, `\x{%x}`, r)
		}
		sb.WriteByte(']')
	case AnySet:
		sb.WriteString(classes[AnySet].expr)
	default:
		sb.WriteString(classes[e.Kind].expr)
	}

	if e.Kind != SingleCharSet {
		lo, hi := e.MinRepeat, e.MaxRepeat
		if hi < 1 {
			lo, hi = 1, 1
		}
		switch {
		case hi > maxRegexpRepeat:
			fmt.Fprintf(&sb, "{%d,}", min(lo, maxRegexpRepeat))
		case lo != 1 || hi != 1:
			fmt.Fprintf(&sb, "{%d,%d}", lo, hi)
		}
	}

	if e.FractionUsed < 1 {
		sb.WriteString(")?")
	}

	return sb.String()
}
