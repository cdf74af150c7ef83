package charrun_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strpattern/charrun"
	"github.com/katalvlaran/strpattern/rng"
)

func TestDraw_BoundsAndPopulation(t *testing.T) {
	el := charrun.Element{Kind: charrun.Digit, MinRepeat: 2, MaxRepeat: 4, FractionUsed: 1}
	r := rng.FromSeed(7)
	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		s := el.Draw(r)
		assert.GreaterOrEqual(t, len(s), 2)
		assert.LessOrEqual(t, len(s), 4)
		for _, c := range s {
			assert.True(t, c >= '0' && c <= '9', "non-digit %q", c)
		}
		seen[len(s)] = true
	}
	assert.Len(t, seen, 3, "every length in range shows up")
}

func TestDraw_FractionUsed(t *testing.T) {
	r := rng.FromSeed(1)
	never := charrun.Element{Kind: charrun.Letters, MinRepeat: 1, MaxRepeat: 3, FractionUsed: 0}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "", never.Draw(r))
	}

	sometimes := charrun.Element{Kind: charrun.Letters, MinRepeat: 1, MaxRepeat: 1, FractionUsed: 0.5}
	empty := 0
	for i := 0; i < 2000; i++ {
		if sometimes.Draw(r) == "" {
			empty++
		}
	}
	assert.InDelta(t, 1000, empty, 150)
}

func TestDraw_SingleCharSet(t *testing.T) {
	el := charrun.NewChoices('A', 'B')
	r := rng.FromSeed(2)
	for i := 0; i < 100; i++ {
		s := el.Draw(r)
		assert.Contains(t, []string{"A", "B"}, s)
	}
}

func TestDraw_Deterministic(t *testing.T) {
	el := charrun.Element{Kind: charrun.AnySet, MinRepeat: 3, MaxRepeat: 8, FractionUsed: 0.9, Extra: []rune{'é'}}
	a, b := rng.FromSeed(99), rng.FromSeed(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, el.Draw(a), el.Draw(b))
	}
}

func TestKeyspace(t *testing.T) {
	assert.Equal(t, 2.0, charrun.NewChoices('A', 'B').Keyspace())
	assert.Equal(t, 10.0, charrun.New(charrun.Digit).Keyspace())
	assert.Equal(t, 111.0, charrun.Element{Kind: charrun.Digit, MinRepeat: 1, MaxRepeat: 2, FractionUsed: 0.5}.Keyspace())
	assert.Equal(t, 1.0, charrun.Element{Kind: charrun.Digit, MinRepeat: 0, MaxRepeat: 1}.Keyspace())
	assert.True(t, math.IsInf(charrun.Element{Kind: charrun.AnySet, MinRepeat: 1, MaxRepeat: 400, FractionUsed: 1}.Keyspace(), 1))
}
