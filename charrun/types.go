package charrun

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors returned by the charrun package.
var (
	// ErrUnrecognizedToken indicates a serialized stream whose next token
	// matches no known kind, or a token that is malformed.
	ErrUnrecognizedToken = errors.New("charrun: unrecognized token")

	// ErrInvalidElement indicates an element violating its invariants
	// (0 ≤ MinRepeat ≤ MaxRepeat, 0 ≤ FractionUsed ≤ 1, non-empty choice set).
	ErrInvalidElement = errors.New("charrun: invalid element")

	// ErrUnknownKind indicates a kind value or name outside the known set.
	ErrUnknownKind = errors.New("charrun: unknown kind")
)

// Kind tags the variant of an Element.
type Kind uint8

const (
	// Digit matches runs of 0-9.
	Digit Kind = iota
	// AlphaNumeric matches runs of ASCII letters and digits.
	AlphaNumeric
	// Lowercase matches runs of a-z.
	Lowercase
	// Uppercase matches runs of A-Z.
	Uppercase
	// Letters matches runs of a-z and A-Z.
	Letters
	// SingleCharSet matches exactly one rune from Element.Choices.
	SingleCharSet
	// AnySet matches anything; it draws from printable ASCII plus Element.Extra.
	AnySet

	numKinds
)

// Kinds returns all kinds in fitting priority order; on equal gradients the
// earlier kind wins.
func Kinds() []Kind {
	return []Kind{Digit, AlphaNumeric, Lowercase, Uppercase, Letters, SingleCharSet, AnySet}
}

// String returns the stable wire name of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return classes[k].name
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < numKinds; k++ {
		if classes[k].name == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Element is one character-run element. It is an immutable value once fitted.
//
//   - MinRepeat, MaxRepeat – inclusive run-length bounds (SingleCharSet: 1,1).
//   - FractionUsed         – probability that the element contributes anything.
//   - Extra                – AnySet only: sorted runes beyond printable ASCII.
//   - Choices              – SingleCharSet only: sorted candidate runes.
type Element struct {
	Kind         Kind
	MinRepeat    int
	MaxRepeat    int
	FractionUsed float64
	Extra        []rune
	Choices      []rune
}

// New returns a template element of the given kind with bounds {1,1} and
// FractionUsed 1. Templates are what FitStart and Fit are called on.
func New(kind Kind) Element {
	return Element{Kind: kind, MinRepeat: 1, MaxRepeat: 1, FractionUsed: 1}
}

// NewChoices returns a SingleCharSet template over the given runes
// (sorted, duplicates removed).
func NewChoices(choices ...rune) Element {
	e := New(SingleCharSet)
	e.Choices = sortedUnique(choices)

	return e
}

// Validate checks the element invariants.
func (e Element) Validate() error {
	if e.Kind >= numKinds {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(e.Kind))
	}
	if e.MinRepeat < 0 || e.MinRepeat > e.MaxRepeat {
		return fmt.Errorf("%w: repeat bounds {%d,%d}", ErrInvalidElement, e.MinRepeat, e.MaxRepeat)
	}
	if math.IsNaN(e.FractionUsed) || e.FractionUsed < 0 || e.FractionUsed > 1 {
		return fmt.Errorf("%w: fraction used %v", ErrInvalidElement, e.FractionUsed)
	}
	if e.Kind == SingleCharSet && len(e.Choices) == 0 {
		return fmt.Errorf("%w: empty choice set", ErrInvalidElement)
	}

	return nil
}

// NParam returns the number of distinguishable parameters of the element:
// 2 for run kinds, 2+|Extra| for AnySet, 1+|Choices| for SingleCharSet.
func (e Element) NParam() int {
	switch e.Kind {
	case AnySet:
		return 2 + len(e.Extra)
	case SingleCharSet:
		return 1 + len(e.Choices)
	default:
		return 2
	}
}

// Population returns the runes the element draws from.
func (e Element) Population() []rune {
	switch e.Kind {
	case SingleCharSet:
		return e.Choices
	case AnySet:
		if len(e.Extra) == 0 {
			return printable
		}
		return append(slices.Clip(printable), e.Extra...)
	default:
		return classes[e.Kind].population
	}
}

// Matches reports whether r belongs to the element's character class.
func (e Element) Matches(r rune) bool {
	if e.Kind == SingleCharSet {
		_, ok := slices.BinarySearch(e.Choices, r)
		return ok
	}

	return classes[e.Kind].member(r)
}

// sortedUnique returns the sorted distinct runes of rs, or nil when empty.
func sortedUnique(rs []rune) []rune {
	if len(rs) == 0 {
		return nil
	}
	out := slices.Clone(rs)
	slices.Sort(out)

	return slices.Compact(out)
}
