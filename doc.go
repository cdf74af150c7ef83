// Package strpattern infers compact, generative structural patterns from
// columns of strings and samples synthetic values from them.
//
// 🚀 What is strpattern?
//
//	Given values such as "R123", "R837", "R354", the fitter discovers a
//	sequence of typed character runs, here `[R]\d{3,3}`, that explains the
//	column economically. The pattern can be serialized, restored, replayed
//	as a regular expression and sampled for statistically similar values,
//	optionally without repeats.
//
// ✨ Packages:
//
//	charrun/  – character-run elements: digit, alphanumeric, lowercase,
//	            uppercase, letters, single-char-set and any runs; span search,
//	            anchored and unanchored fits, drawing, tokens, budgets
//	spanopt/  – span-assignment optimizer: picks one match per string so the
//	            leftover prefixes and suffixes are as predictable as possible
//	pattern/  – greedy fitter (fast, exhaustive, auto), Pattern, Unique
//	            wrapper, Generator, JSON/YAML codecs, config and metrics
//	rng/      – seed policy and derived independent random streams
//
// Quick example:
//
//	p, err := pattern.Fit([]string{"R1", "R2", "R3"}, pattern.WithUnique())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, _ := pattern.NewGenerator(p, pattern.WithSeed(7))
//	v, err := g.Draw() // e.g. "R8"; ErrExhaustedKeyspace after ten values
//
// Everything random goes through an explicit *rand.Rand built by rng, so
// fits and draws are reproducible for a fixed seed.
//
//	go get github.com/katalvlaran/strpattern
package strpattern
