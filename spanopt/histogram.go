package spanopt

import "math"

// histogram stores counts[L] = number of tracked remainders longer than L.
// A remainder of length k therefore contributes +1 to counts[0..k-1].
type histogram struct {
	counts []int
	lg     []float64 // lg[k] = log(k); shared, sized for n+2
}

func newHistogram(lg []float64) *histogram {
	return &histogram{lg: lg}
}

// logTable precomputes log(k) for k in [0, n+1]; lg[0] is never read.
func logTable(n int) []float64 {
	lg := make([]float64, n+2)
	for k := 1; k < len(lg); k++ {
		lg[k] = math.Log(float64(k))
	}

	return lg
}

func (h *histogram) add(length int) {
	for len(h.counts) < length {
		h.counts = append(h.counts, 0)
	}
	for l := 0; l < length; l++ {
		h.counts[l]++
	}
}

func (h *histogram) remove(length int) {
	for l := 0; l < length; l++ {
		h.counts[l]--
	}
}

// energy returns Σ_L log(counts[L]+1).
func (h *histogram) energy() float64 {
	var e float64
	for _, c := range h.counts {
		e += h.lg[c+1]
	}

	return e
}

// delta returns the energy change of moving one remainder from length `from`
// to length `to`. Only buckets in [min, max) change, each by exactly one.
func (h *histogram) delta(from, to int) float64 {
	var d float64
	switch {
	case to < from:
		for l := to; l < from; l++ {
			c := h.counts[l]
			d += h.lg[c] - h.lg[c+1]
		}
	case to > from:
		for l := from; l < to; l++ {
			c := 0
			if l < len(h.counts) {
				c = h.counts[l]
			}
			d += h.lg[c+2] - h.lg[c+1]
		}
	}

	return d
}

// snapshot returns a trimmed copy of counts (trailing zero buckets dropped).
func (h *histogram) snapshot() []int {
	end := len(h.counts)
	for end > 0 && h.counts[end-1] == 0 {
		end--
	}
	out := make([]int, end)
	copy(out, h.counts[:end])

	return out
}

// Energy returns the energy of a single pool of remainders with the given
// lengths: Σ_L log(#{lengths > L} + 1). It is the baseline against which the
// gain of a fitted element is measured.
//
// Complexity: O(n + max length).
func Energy(lengths []int) float64 {
	h := newHistogram(logTable(len(lengths)))
	for _, l := range lengths {
		h.add(l)
	}

	return h.energy()
}
