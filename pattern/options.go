package pattern

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/strpattern/spanopt"
)

// Method selects the fitting strategy.
type Method uint8

const (
	// Auto picks Exhaustive for short strings and Fast otherwise.
	Auto Method = iota
	// Fast is the greedy-left strategy.
	Fast
	// Exhaustive is the greedy-both-sides strategy.
	Exhaustive
)

// autoMaxMeanLength is the mean rune length up to which Auto fits exhaustively.
const autoMaxMeanLength = 10

var methodNames = [...]string{Auto: "auto", Fast: "fast", Exhaustive: "exhaustive"}

// String returns the method name used in configuration files.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}

	return fmt.Sprintf("method(%d)", uint8(m))
}

// ParseMethod maps "auto", "fast" or "exhaustive" to a Method.
// The empty string means Auto.
func ParseMethod(name string) (Method, error) {
	if name == "" {
		return Auto, nil
	}
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Options configures Fit and NewGenerator.
//
//   - Method         – fitting strategy (default Auto).
//   - CountThreshold – minimum number of strings a candidate element must
//     match to be committed; AnySet is exempt. Must be ≥ 0 (default 0).
//   - Seed           – parent seed; 0 ⇒ rng.DefaultSeed. Fit derives one
//     seed per trial from it, Generator seeds its RNG with it.
//   - Eps, MaxPasses – forwarded to spanopt for exhaustive trials.
//   - Unique         – flag stored on the fitted pattern.
//   - Parallel       – try the kinds of one step concurrently.
//   - MaxAttempts    – retry bound of unique draws; 0 ⇒ DefaultMaxAttempts.
//   - Logger         – debug logging; nil ⇒ slog.Default().
//   - Metrics        – optional Prometheus collectors; nil disables them.
type Options struct {
	Method         Method
	CountThreshold int
	Seed           int64
	Eps            float64
	MaxPasses      int
	Unique         bool
	Parallel       bool
	MaxAttempts    int
	Logger         *slog.Logger
	Metrics        *Metrics
}

// Option represents a functional option for Fit and NewGenerator.
type Option func(*Options)

// WithMethod sets the fitting strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithCountThreshold sets the minimum number of strings an element must match.
func WithCountThreshold(n int) Option {
	return func(o *Options) { o.CountThreshold = n }
}

// WithSeed sets the parent seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithEps sets the optimizer acceptance tolerance.
func WithEps(eps float64) Option {
	return func(o *Options) { o.Eps = eps }
}

// WithMaxPasses caps the optimizer sweeps per trial; 0 means unlimited.
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.MaxPasses = n }
}

// WithUnique marks the fitted pattern as unique.
func WithUnique() Option {
	return func(o *Options) { o.Unique = true }
}

// WithParallel evaluates the kinds of each greedy step concurrently.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithMaxAttempts sets the retry bound of unique draws.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// WithLogger sets the logger; a "component" attribute is added by the fitter.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions returns the defaults: Auto, no threshold, seed 0,
// spanopt.DefaultEps, unlimited sweeps, sequential trials,
// DefaultMaxAttempts, slog.Default() and no metrics.
func DefaultOptions() Options {
	return Options{
		Method:      Auto,
		Eps:         spanopt.DefaultEps,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Options{}, err
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	cfg.Logger = cfg.Logger.With(slog.String("component", "pattern"))

	return cfg, nil
}

func (o Options) validate() error {
	if int(o.Method) >= len(methodNames) {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, uint8(o.Method))
	}
	if o.CountThreshold < 0 {
		return ErrBadThreshold
	}
	if o.MaxAttempts < 0 {
		return ErrBadMaxAttempts
	}

	return o.spanOptions(0).Validate()
}

// spanOptions returns the optimizer options of one trial.
func (o Options) spanOptions(seed int64) spanopt.Options {
	return spanopt.Options{Seed: seed, Eps: o.Eps, MaxPasses: o.MaxPasses}
}
