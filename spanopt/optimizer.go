package spanopt

import (
	"github.com/katalvlaran/strpattern/rng"
)

// Treatments for strings without candidate spans.
const (
	dumpLeft  = -1 // whole string stays in the left pool
	dumpRight = -2 // whole string stays in the right pool
)

// Optimizer runs the span-assignment local search over one column snapshot.
// It is single-use and not safe for concurrent use; create one per trial.
type Optimizer struct {
	runes  [][]rune
	cands  [][]Span
	choice []int // index into cands[i], or dumpLeft/dumpRight

	left  *histogram
	right *histogram

	eps       float64
	maxPasses int
	onMove    func(float64)

	baseline float64
	energy   float64
	passes   int
	moves    int
}

// New validates inputs, builds the initial assignment and folds it into the
// histograms. candidates[i] lists the spans available for values[i]; an
// empty list means the string can only be dumped left or right.
//
// Initial treatment: the longest candidate (first on ties); candidate-less
// strings draw their side from a stream seeded by opts.Seed, in input order.
//
// Errors: ErrLengthMismatch, ErrSpanOutOfRange, ErrBadEps, ErrBadMaxPasses.
//
// Complexity: O(Σ candidates + Σ lengths).
func New(values []string, candidates [][]Span, opts Options) (*Optimizer, error) {
	if len(values) != len(candidates) {
		return nil, ErrLengthMismatch
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := len(values)
	o := &Optimizer{
		runes:     make([][]rune, n),
		cands:     candidates,
		choice:    make([]int, n),
		eps:       opts.Eps,
		maxPasses: opts.MaxPasses,
		onMove:    opts.OnMove,
	}
	lg := logTable(n)
	o.left = newHistogram(lg)
	o.right = newHistogram(lg)

	r := rng.FromSeed(opts.Seed)
	whole := make([]int, n)
	for i, v := range values {
		o.runes[i] = []rune(v)
		size := len(o.runes[i])
		whole[i] = size

		best, bestLen := dumpLeft, -1
		for j, s := range candidates[i] {
			if s.Start < 0 || s.End > size || s.Start >= s.End {
				return nil, ErrSpanOutOfRange
			}
			if s.Len() > bestLen {
				best, bestLen = j, s.Len()
			}
		}
		if bestLen < 0 && r.Intn(2) == 1 {
			best = dumpRight
		}
		o.choice[i] = best

		l, rt := o.split(i, best)
		o.left.add(l)
		o.right.add(rt)
	}

	o.baseline = Energy(whole)
	o.energy = o.left.energy() + o.right.energy()

	return o, nil
}

// split returns the left and right remainder lengths of string i under treatment c.
func (o *Optimizer) split(i, c int) (int, int) {
	size := len(o.runes[i])
	switch c {
	case dumpLeft:
		return size, 0
	case dumpRight:
		return 0, size
	default:
		s := o.cands[i][c]
		return s.Start, size - s.End
	}
}

// Optimize sweeps all strings until a sweep applies no move (or MaxPasses
// sweeps ran). Each string takes its single best move with Δ < −Eps.
// Returns the final energy.
func (o *Optimizer) Optimize() float64 {
	for o.maxPasses == 0 || o.passes < o.maxPasses {
		o.passes++
		changed := false
		for i := range o.runes {
			if o.improve(i) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return o.energy
}

// improve evaluates every alternative treatment of string i against the
// current histograms and applies the best strictly improving one.
func (o *Optimizer) improve(i int) bool {
	cur := o.choice[i]
	curL, curR := o.split(i, cur)

	best, bestDelta := cur, -o.eps
	try := func(alt int) {
		if alt == cur {
			return
		}
		l, r := o.split(i, alt)
		d := o.left.delta(curL, l) + o.right.delta(curR, r)
		if d < bestDelta {
			best, bestDelta = alt, d
		}
	}

	if len(o.cands[i]) == 0 {
		try(dumpLeft)
		try(dumpRight)
	} else {
		for j := range o.cands[i] {
			try(j)
		}
	}
	if best == cur {
		return false
	}

	newL, newR := o.split(i, best)
	o.left.remove(curL)
	o.left.add(newL)
	o.right.remove(curR)
	o.right.add(newR)
	o.choice[i] = best
	o.energy += bestDelta
	o.moves++
	if o.onMove != nil {
		o.onMove(o.energy)
	}

	return true
}

// Energy returns the current energy of the assignment.
func (o *Optimizer) Energy() float64 { return o.energy }

// Baseline returns the energy of the column before any element is fitted:
// every string whole, in a single pool.
func (o *Optimizer) Baseline() float64 { return o.baseline }

// Gain returns Baseline() − Energy(); positive when the assignment makes the
// remainders cheaper to describe than the untouched strings.
func (o *Optimizer) Gain() float64 { return o.baseline - o.energy }

// Passes returns the number of sweeps run so far.
func (o *Optimizer) Passes() int { return o.passes }

// Moves returns the number of applied moves so far.
func (o *Optimizer) Moves() int { return o.moves }

// Histograms returns copies of the left and right cumulative histograms.
func (o *Optimizer) Histograms() (left, right []int) {
	return o.left.snapshot(), o.right.snapshot()
}

// Remainders returns the left and right remainder of every string under
// the current assignment. Input strings are never modified.
func (o *Optimizer) Remainders() (left, right []string) {
	left = make([]string, len(o.runes))
	right = make([]string, len(o.runes))
	for i, rs := range o.runes {
		l, r := o.split(i, o.choice[i])
		left[i] = string(rs[:l])
		right[i] = string(rs[len(rs)-r:])
	}

	return left, right
}

// Statistics reads matched-length statistics off the current assignment.
// When no string matched, MinLength=0 and MaxLength=1 are substituted so
// that callers never build a zero-width mandatory element.
func (o *Optimizer) Statistics() Statistics {
	st := Statistics{Lengths: make([]int, len(o.runes))}
	matched := 0
	for i, c := range o.choice {
		if c < 0 {
			continue
		}
		l := o.cands[i][c].Len()
		st.Lengths[i] = l
		if matched == 0 || l < st.MinLength {
			st.MinLength = l
		}
		if l > st.MaxLength {
			st.MaxLength = l
		}
		matched++
	}
	if matched == 0 {
		st.MinLength, st.MaxLength = 0, 1
		return st
	}
	st.FractionUsed = float64(matched) / float64(len(o.runes))

	return st
}
