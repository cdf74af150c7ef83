package charrun_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strpattern/charrun"
)

func TestInformationBudget(t *testing.T) {
	digit3 := charrun.Element{Kind: charrun.Digit, MinRepeat: 3, MaxRepeat: 3, FractionUsed: 1}
	// Six strings, each three digits: ll = 6·(−3·log 10).
	assert.InDelta(t, 4+36*math.Log(10), digit3.InformationBudget([]int{3, 3, 3, 3, 3, 3}), 1e-9)

	single := charrun.Element{Kind: charrun.SingleCharSet, MinRepeat: 1, MaxRepeat: 1, FractionUsed: 1, Choices: []rune{'R'}}
	// One choice, always used: the data costs nothing beyond the parameters.
	assert.InDelta(t, 4.0, single.InformationBudget([]int{1, 1, 1, 1, 1, 1}), 1e-12)

	half := charrun.Element{Kind: charrun.Lowercase, MinRepeat: 1, MaxRepeat: 2, FractionUsed: 0.5}
	// lengths {1, 2, 0, 0}: ll = (−log26 + log .25) + (−2log26 + log .25) + 2·log .5
	ll := (-math.Log(26) + math.Log(0.25)) + (-2*math.Log(26) + math.Log(0.25)) + 2*math.Log(0.5)
	assert.InDelta(t, 4-2*ll, half.InformationBudget([]int{1, 2, 0, 0}), 1e-9)

	assert.Equal(t, 4.0, digit3.InformationBudget(nil))
}

// TestInformationBudget_PrefersNarrowClasses: explaining the same runs with a
// wider alphabet costs more.
func TestInformationBudget_PrefersNarrowClasses(t *testing.T) {
	lengths := []int{4, 4, 4, 4}
	cost := func(k charrun.Kind) float64 {
		return charrun.Element{Kind: k, MinRepeat: 4, MaxRepeat: 4, FractionUsed: 1}.InformationBudget(lengths)
	}
	assert.Less(t, cost(charrun.Digit), cost(charrun.Lowercase))
	assert.Less(t, cost(charrun.Lowercase), cost(charrun.Letters))
	assert.Less(t, cost(charrun.Letters), cost(charrun.AlphaNumeric))
	assert.Less(t, cost(charrun.AlphaNumeric), cost(charrun.AnySet))
}
