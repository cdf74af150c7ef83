package pattern

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"slices"
	"strings"

	"github.com/katalvlaran/strpattern/charrun"
)

// Sentinel errors returned by the pattern package.
var (
	// ErrExhaustedKeyspace indicates that a unique draw found no unseen value
	// within its retry bound.
	ErrExhaustedKeyspace = errors.New("pattern: keyspace exhausted")

	// ErrUnknownMethod indicates a Method value or name outside Auto, Fast, Exhaustive.
	ErrUnknownMethod = errors.New("pattern: unknown fitting method")

	// ErrBadThreshold indicates a negative CountThreshold.
	ErrBadThreshold = errors.New("pattern: CountThreshold must be non-negative")

	// ErrBadMaxAttempts indicates a negative MaxAttempts.
	ErrBadMaxAttempts = errors.New("pattern: MaxAttempts must be non-negative")

	// ErrKindMismatch indicates a record whose kind disagrees with its token.
	ErrKindMismatch = errors.New("pattern: record kind does not match token")

	// ErrTrailingToken indicates a record token followed by unparsed input.
	ErrTrailingToken = errors.New("pattern: trailing input after token")

	// ErrBadConfig indicates a configuration that fails validation.
	ErrBadConfig = errors.New("pattern: invalid config")
)

// DefaultMaxAttempts bounds the retries of a single unique draw.
const DefaultMaxAttempts = 100_000

// Pattern is an ordered list of fitted elements plus the persisted unique
// flag. It is an immutable value; the seen set of a unique draw lives in
// Unique, never here.
type Pattern struct {
	elements []charrun.Element
	unique   bool
}

// New builds a pattern from elements in left-to-right order.
//
// Errors: the first element failing charrun.Element.Validate, wrapped with
// its position.
func New(elements []charrun.Element, unique bool) (Pattern, error) {
	for i, e := range elements {
		if err := e.Validate(); err != nil {
			return Pattern{}, fmt.Errorf("element %d: %w", i, err)
		}
	}

	return Pattern{elements: slices.Clone(elements), unique: unique}, nil
}

// Elements returns a copy of the elements in order.
func (p Pattern) Elements() []charrun.Element { return slices.Clone(p.elements) }

// Len returns the number of elements.
func (p Pattern) Len() int { return len(p.elements) }

// Unique reports whether draws through a Generator must not repeat.
func (p Pattern) Unique() bool { return p.unique }

// WithUnique returns a copy of p with the unique flag set to u.
func (p Pattern) WithUnique(u bool) Pattern {
	p.unique = u
	return p
}

// Draw concatenates one draw of every element, in order.
// An empty pattern always draws "".
func (p Pattern) Draw(r *rand.Rand) string {
	var sb strings.Builder
	for _, e := range p.elements {
		sb.WriteString(e.Draw(r))
	}

	return sb.String()
}

// String returns the compact token stream, e.g. `[R]\d{3,3}`.
// FractionUsed and the unique flag are not part of it; see Document.
func (p Pattern) String() string {
	var sb strings.Builder
	for _, e := range p.elements {
		sb.WriteString(e.Token())
	}

	return sb.String()
}

// Expr returns the anchored Go regexp source matching every string the
// pattern can draw.
func (p Pattern) Expr() string {
	var sb strings.Builder
	sb.WriteByte('^')
	for _, e := range p.elements {
		sb.WriteString(e.Regexp())
	}
	sb.WriteByte('$')

	return sb.String()
}

// Regexp compiles Expr.
func (p Pattern) Regexp() (*regexp.Regexp, error) {
	return regexp.Compile(p.Expr())
}

// Keyspace returns the number of distinct strings the pattern can draw,
// assuming the elements' outputs concatenate unambiguously. It returns
// +Inf on overflow and 1 for the empty pattern.
func (p Pattern) Keyspace() float64 {
	total := 1.0
	for _, e := range p.elements {
		total *= e.Keyspace()
		if math.IsInf(total, 1) {
			break
		}
	}

	return total
}

// Equal reports whether p and q hold the same elements in the same order and
// the same unique flag. Nil and empty rune sets compare equal.
func (p Pattern) Equal(q Pattern) bool {
	return p.unique == q.unique && slices.EqualFunc(p.elements, q.elements, elementEqual)
}

func elementEqual(a, b charrun.Element) bool {
	return a.Kind == b.Kind &&
		a.MinRepeat == b.MinRepeat &&
		a.MaxRepeat == b.MaxRepeat &&
		a.FractionUsed == b.FractionUsed &&
		slices.Equal(a.Extra, b.Extra) &&
		slices.Equal(a.Choices, b.Choices)
}
