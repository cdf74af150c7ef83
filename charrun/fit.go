package charrun

import (
	"github.com/katalvlaran/strpattern/spanopt"
)

// Fitted is the outcome of fitting one element kind against a column.
//
//   - Element  – the fitted element (bounds, FractionUsed, Extra filled in).
//   - Left     – left remainders; for FitStart, the values with the match trimmed.
//   - Right    – right remainders; nil for FitStart.
//   - Lengths  – matched rune length per input string (0 = not matched).
//   - Matched  – number of strings with a non-empty match.
//   - Gain     – energy removed from the column (≥ 0 for useful elements).
//   - Budget   – InformationBudget(Lengths) of the fitted element.
//   - Gradient – Gain / Budget; the fitter commits the highest one.
//   - Passes, Moves – optimizer work (Fit only).
type Fitted struct {
	Element  Element
	Left     []string
	Right    []string
	Lengths  []int
	Matched  int
	Gain     float64
	Budget   float64
	Gradient float64
	Passes   int
	Moves    int
}

// FitStart performs the left-anchored greedy fit: each value is matched
// from position 0 only and the matched prefix is trimmed off.
//
// The returned element takes Kind and Choices from e; bounds span the
// matched lengths of strings that matched and FractionUsed is their share.
// When nothing matched, bounds are {0,1} and FractionUsed is 0.
//
// Complexity: O(Σ len(values)).
func (e Element) FitStart(values []string) Fitted {
	before := make([]int, len(values))
	after := make([]int, len(values))
	lengths := make([]int, len(values))
	rest := make([]string, len(values))
	extra := make(map[rune]struct{})

	for i, v := range values {
		rs := []rune(v)
		k := e.prefixLen(rs)
		lengths[i] = k
		rest[i] = string(rs[k:])
		before[i] = len(rs)
		after[i] = len(rs) - k
		if e.Kind == AnySet {
			collectExtra(extra, rs[:k])
		}
	}

	f := Fitted{
		Element: e.withLengths(lengths, extra),
		Left:    rest,
		Lengths: lengths,
		Gain:    spanopt.Energy(before) - spanopt.Energy(after),
	}
	f.finish()

	return f
}

// Fit performs the unanchored fit: every value offers all spans found by
// FindSpans and spanopt picks one per value (or a dump side when none).
//
// Errors: only those of spanopt.New on invalid options.
//
// Complexity: dominated by spanopt (see its package docs).
func (e Element) Fit(values []string, opts spanopt.Options) (Fitted, error) {
	runes := make([][]rune, len(values))
	cands := make([][]spanopt.Span, len(values))
	for i, v := range values {
		runes[i] = []rune(v)
		cands[i] = e.findSpans(runes[i])
	}

	opt, err := spanopt.New(values, cands, opts)
	if err != nil {
		return Fitted{}, err
	}
	opt.Optimize()
	left, right := opt.Remainders()
	st := opt.Statistics()

	extra := make(map[rune]struct{})
	if e.Kind == AnySet {
		for i, rs := range runes {
			if st.Lengths[i] == 0 {
				continue
			}
			start := len([]rune(left[i]))
			collectExtra(extra, rs[start:start+st.Lengths[i]])
		}
	}

	f := Fitted{
		Element: e.withLengths(st.Lengths, extra),
		Left:    left,
		Right:   right,
		Lengths: st.Lengths,
		Gain:    opt.Gain(),
		Passes:  opt.Passes(),
		Moves:   opt.Moves(),
	}
	f.finish()

	return f, nil
}

// finish fills Matched, Budget and Gradient from Element and Lengths.
func (f *Fitted) finish() {
	for _, l := range f.Lengths {
		if l > 0 {
			f.Matched++
		}
	}
	f.Budget = f.Element.InformationBudget(f.Lengths)
	if f.Matched > 0 && f.Budget > 0 {
		f.Gradient = f.Gain / f.Budget
	}
}

// withLengths derives a fitted element from matched lengths.
func (e Element) withLengths(lengths []int, extra map[rune]struct{}) Element {
	out := Element{Kind: e.Kind, Choices: e.Choices}
	matched := 0
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if matched == 0 || l < out.MinRepeat {
			out.MinRepeat = l
		}
		if l > out.MaxRepeat {
			out.MaxRepeat = l
		}
		matched++
	}
	if matched == 0 {
		out.MinRepeat, out.MaxRepeat = 0, 1
	} else {
		out.FractionUsed = float64(matched) / float64(len(lengths))
	}
	if e.Kind == AnySet && len(extra) > 0 {
		rs := make([]rune, 0, len(extra))
		for r := range extra {
			rs = append(rs, r)
		}
		out.Extra = sortedUnique(rs)
	}

	return out
}

func collectExtra(into map[rune]struct{}, rs []rune) {
	for _, r := range rs {
		if !isPrintable(r) {
			into[r] = struct{}{}
		}
	}
}
