package charrun

import (
	"math"
	"math/rand"
	"strings"
)

// Draw samples one instance of the element: with probability FractionUsed a
// run of length uniform in [MinRepeat, MaxRepeat] drawn rune by rune from
// Population(); otherwise "".
//
// r must not be nil; the element holds no random state of its own.
func (e Element) Draw(r *rand.Rand) string {
	if r.Float64() >= e.FractionUsed {
		return ""
	}
	pop := e.Population()
	if len(pop) == 0 || e.MaxRepeat <= 0 {
		return ""
	}

	n := e.MinRepeat + r.Intn(e.MaxRepeat-e.MinRepeat+1)
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(pop[r.Intn(len(pop))])
	}

	return sb.String()
}

// Keyspace returns the number of distinct strings the element can produce,
// +Inf when it overflows float64. The empty string counts once when the
// element is optional or allows zero length.
func (e Element) Keyspace() float64 {
	if e.FractionUsed <= 0 {
		return 1
	}
	k := float64(len(e.Population()))
	var total float64
	for i := e.MinRepeat; i <= e.MaxRepeat; i++ {
		total += math.Pow(k, float64(i))
	}
	if e.FractionUsed < 1 && e.MinRepeat > 0 {
		total++
	}

	return total
}
