package charrun

import "math"

// InformationBudget returns the BIC-style complexity cost of the element
// given the matched length of every observed string (0 = not matched).
//
// With options = |Population()|, range = MaxRepeat−MinRepeat+1, n = len(lengths):
//
//	ll = Σ_{i∈[MinRepeat,MaxRepeat], i>0} count(i)·(−i·log(options) + log(FractionUsed/range))
//	   + count(0)·log(count(0)/n)
//	budget = 2·NParam() − 2·ll
//
// ll is the log-likelihood of the observed runs under the element, so the
// budget is always ≥ 2·NParam(). Lengths outside [MinRepeat,MaxRepeat] are
// not achievable by the element and are ignored.
//
// Complexity: O(n).
func (e Element) InformationBudget(lengths []int) float64 {
	n := len(lengths)
	base := 2 * float64(e.NParam())
	if n == 0 {
		return base
	}

	counts := make(map[int]int)
	for _, l := range lengths {
		counts[l]++
	}

	var ll float64
	logOptions := math.Log(float64(len(e.Population())))
	width := float64(e.MaxRepeat - e.MinRepeat + 1)
	for i := max(e.MinRepeat, 1); i <= e.MaxRepeat; i++ {
		c := counts[i]
		if c == 0 {
			continue
		}
		// Each drawn rune costs log(options), so the term is negative and
		// the budget below grows with the data the element has to explain.
		ll += float64(c) * (-float64(i)*logOptions + math.Log(e.FractionUsed/width))
	}
	if c0 := counts[0]; c0 > 0 {
		ll += float64(c0) * math.Log(float64(c0)/float64(n))
	}

	return base - 2*ll
}
