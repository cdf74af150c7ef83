package pattern

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strpattern/charrun"
	"github.com/katalvlaran/strpattern/rng"
)

// Trial outcomes reported to Metrics.Trials.
const (
	outcomeCommitted = "committed"
	outcomeOutscored = "outscored"
	outcomeRejected  = "rejected"
)

// Fit infers a structural pattern explaining values.
//
// Steps:
//  1. Build and validate Options; resolve Auto from the mean rune length.
//  2. Fast: repeat greedy steps on the single remainder list until every
//     remainder is empty. Exhaustive: one greedy step, then recurse on the
//     left and right remainder lists; the result is left + [element] + right.
//  3. Each greedy step tries every kind of charrun.Kinds() on the same
//     snapshot and commits the accepted trial with the highest gradient.
//
// Empty input, or input made only of empty strings, yields an empty pattern
// and no error. values is never modified.
//
// Errors: ErrUnknownMethod, ErrBadThreshold, ErrBadMaxAttempts,
// spanopt.ErrBadEps, spanopt.ErrBadMaxPasses.
func Fit(values []string, opts ...Option) (Pattern, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Pattern{}, err
	}

	start := time.Now()
	f := &fitter{
		opts:   cfg,
		method: resolveMethod(cfg.Method, values),
		seed:   cfg.Seed,
	}
	if f.seed == 0 {
		f.seed = rng.DefaultSeed
	}

	var elements []charrun.Element
	if f.method == Fast {
		elements, err = f.fast(values)
	} else {
		elements, err = f.exhaustive(values)
	}
	if err != nil {
		return Pattern{}, err
	}

	elapsed := time.Since(start)
	cfg.Metrics.observeFit(f.method, elapsed.Seconds())
	cfg.Logger.Debug("pattern fitted",
		slog.String("method", f.method.String()),
		slog.Int("values", len(values)),
		slog.Int("elements", len(elements)),
		slog.Int("steps", f.steps),
		slog.Duration("elapsed", elapsed),
	)

	return Pattern{elements: elements, unique: cfg.Unique}, nil
}

// resolveMethod maps Auto to Exhaustive when the mean rune length of values
// is at most autoMaxMeanLength and to Fast otherwise.
func resolveMethod(m Method, values []string) Method {
	if m != Auto {
		return m
	}
	if len(values) == 0 {
		return Exhaustive
	}
	total := 0
	for _, v := range values {
		total += utf8.RuneCountInString(v)
	}
	if float64(total)/float64(len(values)) <= autoMaxMeanLength {
		return Exhaustive
	}

	return Fast
}

// fitter holds the state of one Fit call.
type fitter struct {
	opts   Options
	method Method // Fast or Exhaustive
	seed   int64  // parent of every trial seed
	steps  int    // greedy steps taken so far
}

func (f *fitter) fast(values []string) ([]charrun.Element, error) {
	var out []charrun.Element
	for remaining(values) > 0 {
		best, ok, err := f.step(values)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, best.Element)
		values = best.Left
	}

	return out, nil
}

func (f *fitter) exhaustive(values []string) ([]charrun.Element, error) {
	if remaining(values) == 0 {
		return nil, nil
	}
	best, ok, err := f.step(values)
	if err != nil || !ok {
		return nil, err
	}

	left, err := f.exhaustive(best.Left)
	if err != nil {
		return nil, err
	}
	right, err := f.exhaustive(best.Right)
	if err != nil {
		return nil, err
	}

	out := make([]charrun.Element, 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, best.Element)

	return append(out, right...), nil
}

// step runs one greedy step over values and returns the committed trial.
// ok is false when no trial was accepted.
func (f *fitter) step(values []string) (best charrun.Fitted, ok bool, err error) {
	step := f.steps
	f.steps++

	kinds := charrun.Kinds()
	results := make([]charrun.Fitted, len(kinds))
	run := func(i int) error {
		seed := rng.DeriveSeed(f.seed, uint64(step)*16+uint64(kinds[i]))
		res, err := f.try(kinds[i], values, seed)
		if err != nil {
			return fmt.Errorf("step %d, kind %s: %w", step, kinds[i], err)
		}
		results[i] = res

		return nil
	}

	if f.opts.Parallel {
		var g errgroup.Group
		for i := range kinds {
			g.Go(func() error { return run(i) })
		}
		if err := g.Wait(); err != nil {
			return charrun.Fitted{}, false, err
		}
	} else {
		for i := range kinds {
			if err := run(i); err != nil {
				return charrun.Fitted{}, false, err
			}
		}
	}

	// Kinds are in priority order; only a strictly higher gradient displaces
	// an earlier winner.
	winner := -1
	accepted := make([]bool, len(kinds))
	for i, res := range results {
		accepted[i] = f.accept(kinds[i], res)
		if accepted[i] && (winner < 0 || res.Gradient > results[winner].Gradient) {
			winner = i
		}
	}
	for i, res := range results {
		outcome := outcomeRejected
		switch {
		case i == winner:
			outcome = outcomeCommitted
		case accepted[i]:
			outcome = outcomeOutscored
		}
		f.opts.Metrics.observeTrial(kinds[i].String(), outcome, res.Moves)
	}
	if winner < 0 {
		f.opts.Logger.Debug("no acceptable element", slog.Int("step", step), slog.Int("values", len(values)))
		return charrun.Fitted{}, false, nil
	}

	best = results[winner]
	f.opts.Metrics.observeElement(kinds[winner].String())
	f.opts.Logger.Debug("element committed",
		slog.Int("step", step),
		slog.String("kind", kinds[winner].String()),
		slog.String("token", best.Element.Token()),
		slog.Float64("fraction_used", best.Element.FractionUsed),
		slog.Int("matched", best.Matched),
		slog.Float64("gain", best.Gain),
		slog.Float64("gradient", best.Gradient),
	)

	return best, true, nil
}

// accept rejects trials that matched nothing, removed no energy, or matched
// fewer strings than CountThreshold. AnySet ignores the threshold.
func (f *fitter) accept(kind charrun.Kind, res charrun.Fitted) bool {
	if res.Matched == 0 || res.Gain <= 0 {
		return false
	}

	return kind == charrun.AnySet || res.Matched >= f.opts.CountThreshold
}

// try fits one kind against values. It only reads f, so trials of one step
// may run concurrently.
func (f *fitter) try(kind charrun.Kind, values []string, seed int64) (charrun.Fitted, error) {
	if kind == charrun.SingleCharSet {
		return f.growSet(values, seed)
	}

	return f.fit(charrun.New(kind), values, seed)
}

func (f *fitter) fit(e charrun.Element, values []string, seed int64) (charrun.Fitted, error) {
	if f.method == Fast {
		return e.FitStart(values), nil
	}

	return e.Fit(values, f.opts.spanOptions(seed))
}

// growSet grows a SingleCharSet one rune at a time, most frequent rune
// first, for as long as the gradient strictly improves.
func (f *fitter) growSet(values []string, seed int64) (charrun.Fitted, error) {
	cands := leadingRunes(values)
	if len(cands) == 0 {
		return charrun.Fitted{}, nil
	}

	best, err := f.fit(charrun.NewChoices(cands[0]), values, seed)
	if err != nil {
		return charrun.Fitted{}, err
	}
	for n := 2; n <= len(cands); n++ {
		next, err := f.fit(charrun.NewChoices(cands[:n]...), values, seed)
		if err != nil {
			return charrun.Fitted{}, err
		}
		if next.Gradient <= best.Gradient {
			break
		}
		best = next
	}

	return best, nil
}

// leadingRunes returns the distinct first runes of the non-empty values,
// ordered by their frequency over all runes of values (descending), then by
// rune value. Only a leading rune can be matched by a SingleCharSet.
func leadingRunes(values []string) []rune {
	freq := make(map[rune]int)
	lead := make(map[rune]struct{})
	for _, v := range values {
		first := true
		for _, r := range v {
			freq[r]++
			if first {
				lead[r] = struct{}{}
				first = false
			}
		}
	}

	out := make([]rune, 0, len(lead))
	for r := range lead {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b rune) int {
		if c := cmp.Compare(freq[b], freq[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return out
}

// remaining returns the total rune count of values.
func remaining(values []string) int {
	n := 0
	for _, v := range values {
		n += utf8.RuneCountInString(v)
	}

	return n
}
