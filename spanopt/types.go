package spanopt

import "errors"

// Sentinel errors returned by New.
var (
	// ErrLengthMismatch indicates that values and candidates differ in length.
	ErrLengthMismatch = errors.New("spanopt: values and candidates length mismatch")

	// ErrSpanOutOfRange indicates a span that is empty, reversed, or outside its string.
	ErrSpanOutOfRange = errors.New("spanopt: span out of range")

	// ErrBadEps indicates a negative acceptance tolerance.
	ErrBadEps = errors.New("spanopt: Eps must be non-negative")

	// ErrBadMaxPasses indicates a negative sweep limit.
	ErrBadMaxPasses = errors.New("spanopt: MaxPasses must be non-negative")
)

// DefaultEps is the acceptance tolerance: a move is applied only if Δ < −DefaultEps.
const DefaultEps = 1e-8

// Span is a half-open range [Start, End) of rune offsets inside one string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Statistics summarises the final assignment for the element being fitted.
//
//   - MinLength / MaxLength – shortest and longest matched span among strings
//     that matched at all. When nothing matched: 0 and 1.
//   - FractionUsed – share of strings with a non-empty match.
//   - Lengths – matched length per input string (0 when dumped).
type Statistics struct {
	MinLength    int
	MaxLength    int
	FractionUsed float64
	Lengths      []int
}

// Options configures the optimizer.
//
//   - Seed      – seed for the initial dump side of candidate-less strings
//     (0 ⇒ rng.DefaultSeed).
//   - Eps       – acceptance tolerance; moves need Δ < −Eps. Must be ≥ 0.
//   - MaxPasses – cap on full sweeps; 0 means “until no sweep improves”.
//   - OnMove    – optional hook called after every applied move with the new
//     total energy.
type Options struct {
	Seed      int64
	Eps       float64
	MaxPasses int
	OnMove    func(energy float64)
}

// DefaultOptions returns Options with Eps=DefaultEps and no sweep limit.
func DefaultOptions() Options {
	return Options{
		Seed:      0,
		Eps:       DefaultEps,
		MaxPasses: 0,
	}
}

// Validate checks Eps and MaxPasses.
func (o Options) Validate() error {
	if o.Eps < 0 {
		return ErrBadEps
	}
	if o.MaxPasses < 0 {
		return ErrBadMaxPasses
	}

	return nil
}
