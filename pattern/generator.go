package pattern

import (
	"math/rand"

	"github.com/katalvlaran/strpattern/rng"
)

// Generator draws synthetic values from a pattern with its own seeded RNG.
// When the pattern is unique, values never repeat until DrawReset.
// It is not safe for concurrent use.
type Generator struct {
	pattern Pattern
	r       *rand.Rand
	unique  *Unique[Pattern]
	metrics *Metrics
}

// NewGenerator builds a generator for p. Seed, MaxAttempts and Metrics are
// taken from opts; the other options are ignored.
//
// Errors: those of option validation.
func NewGenerator(p Pattern, opts ...Option) (*Generator, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		pattern: p,
		r:       rng.FromSeed(cfg.Seed),
		metrics: cfg.Metrics,
	}
	if p.Unique() {
		g.unique = NewUnique(p, cfg.MaxAttempts)
	}

	return g, nil
}

// Draw returns the next value.
//
// Errors: ErrExhaustedKeyspace for unique patterns whose keyspace ran out.
func (g *Generator) Draw() (string, error) {
	if g.unique == nil {
		g.metrics.observeDraw(nil)
		return g.pattern.Draw(g.r), nil
	}

	v, err := g.unique.Draw(g.r)
	g.metrics.observeDraw(err)

	return v, err
}

// DrawReset forgets the values drawn so far, so a new generation run may
// reuse them. The RNG is not reseeded.
func (g *Generator) DrawReset() {
	if g.unique != nil {
		g.unique.Reset()
	}
}

// Pattern returns the pattern being sampled.
func (g *Generator) Pattern() Pattern { return g.pattern }
