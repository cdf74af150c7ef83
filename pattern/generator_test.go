package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strpattern/pattern"
)

// TestGenerator_ScenarioB: the unique R-digit pattern yields each of its ten
// values once, then runs out.
func TestGenerator_ScenarioB(t *testing.T) {
	p, err := pattern.Fit([]string{"R1", "R2", "R3", "R4", "R5", "R6"}, pattern.WithUnique())
	require.NoError(t, err)

	g, err := pattern.NewGenerator(p, pattern.WithSeed(3))
	require.NoError(t, err)

	got := make(map[string]bool)
	for i := 0; i < 10; i++ {
		v, err := g.Draw()
		require.NoError(t, err)
		assert.Regexp(t, `^R[0-9]$`, v)
		assert.False(t, got[v], "repeat %q", v)
		got[v] = true
	}
	assert.Len(t, got, 10)

	_, err = g.Draw()
	assert.ErrorIs(t, err, pattern.ErrExhaustedKeyspace)

	g.DrawReset()
	v, err := g.Draw()
	require.NoError(t, err)
	assert.True(t, got[v])
}

func TestGenerator_NotUnique(t *testing.T) {
	p, err := pattern.Parse("[AB]")
	require.NoError(t, err)
	g, err := pattern.NewGenerator(p)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		v, err := g.Draw()
		require.NoError(t, err)
		assert.Contains(t, []string{"A", "B"}, v)
	}
	g.DrawReset()
	assert.True(t, p.Equal(g.Pattern()))
}

func TestGenerator_Seeded(t *testing.T) {
	p, err := pattern.Parse(`[a-zA-Z0-9]{8,8}`)
	require.NoError(t, err)

	draw := func(seed int64) []string {
		g, err := pattern.NewGenerator(p, pattern.WithSeed(seed))
		require.NoError(t, err)
		out := make([]string, 5)
		for i := range out {
			out[i], err = g.Draw()
			require.NoError(t, err)
		}
		return out
	}
	assert.Equal(t, draw(7), draw(7))
	assert.NotEqual(t, draw(7), draw(8))
}

func TestGenerator_MaxAttempts(t *testing.T) {
	p, err := pattern.Parse("[A]")
	require.NoError(t, err)
	g, err := pattern.NewGenerator(p.WithUnique(true), pattern.WithMaxAttempts(3))
	require.NoError(t, err)

	_, err = g.Draw()
	require.NoError(t, err)
	_, err = g.Draw()
	assert.ErrorIs(t, err, pattern.ErrExhaustedKeyspace)
	assert.Contains(t, err.Error(), "3 attempts")

	_, err = pattern.NewGenerator(p, pattern.WithMaxAttempts(-1))
	assert.ErrorIs(t, err, pattern.ErrBadMaxAttempts)
}
