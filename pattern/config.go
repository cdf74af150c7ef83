package pattern

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strpattern/spanopt"
)

// Config is the file form of Options. Logger and Metrics are runtime
// dependencies and are passed as options instead.
type Config struct {
	Method         string  `json:"method" yaml:"method"`
	CountThreshold int     `json:"count_threshold" yaml:"count_threshold"`
	Seed           int64   `json:"seed" yaml:"seed"`
	Eps            float64 `json:"eps" yaml:"eps"`
	MaxPasses      int     `json:"max_passes" yaml:"max_passes"`
	Unique         bool    `json:"unique" yaml:"unique"`
	Parallel       bool    `json:"parallel" yaml:"parallel"`
	MaxAttempts    int     `json:"max_attempts" yaml:"max_attempts"`
}

// DefaultConfig mirrors DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Method:      Auto.String(),
		Eps:         spanopt.DefaultEps,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// ParseConfig decodes YAML (or, failing that, JSON) over the defaults and
// validates the result. Fields missing from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = DefaultConfig()
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
			return Config{}, fmt.Errorf("%w: tried YAML and JSON: YAML error: %v, JSON error: %w", ErrBadConfig, err, jsonErr)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads path with priority env > file > defaults.
// An empty path or a missing file leaves the defaults in place.
//
// Environment overrides: STRPATTERN_METHOD, STRPATTERN_COUNT_THRESHOLD,
// STRPATTERN_SEED, STRPATTERN_UNIQUE, STRPATTERN_PARALLEL. A value that does
// not parse as its field's type is rejected with ErrBadConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("load config file: %w", err)
		default:
			if cfg, err = ParseConfig(data); err != nil {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("STRPATTERN_METHOD"); v != "" {
		c.Method = v
	}
	if v := os.Getenv("STRPATTERN_COUNT_THRESHOLD"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: STRPATTERN_COUNT_THRESHOLD=%q: %w", ErrBadConfig, v, err)
		}
		c.CountThreshold = i
	}
	if v := os.Getenv("STRPATTERN_SEED"); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: STRPATTERN_SEED=%q: %w", ErrBadConfig, v, err)
		}
		c.Seed = i
	}
	if v := os.Getenv("STRPATTERN_UNIQUE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: STRPATTERN_UNIQUE=%q: %w", ErrBadConfig, v, err)
		}
		c.Unique = b
	}
	if v := os.Getenv("STRPATTERN_PARALLEL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: STRPATTERN_PARALLEL=%q: %w", ErrBadConfig, v, err)
		}
		c.Parallel = b
	}

	return nil
}

// Validate checks every field; errors wrap ErrBadConfig and the specific
// sentinel (ErrUnknownMethod, ErrBadThreshold, ...).
func (c Config) Validate() error {
	m, err := ParseMethod(c.Method)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	o := Options{
		Method:         m,
		CountThreshold: c.CountThreshold,
		Eps:            c.Eps,
		MaxPasses:      c.MaxPasses,
		MaxAttempts:    c.MaxAttempts,
	}
	if err := o.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

// Options converts the config into functional options for Fit and
// NewGenerator. The config should be valid; an unknown method is passed
// through as an invalid Method so that Fit reports it.
func (c Config) Options() []Option {
	m, err := ParseMethod(c.Method)
	if err != nil {
		m = Method(len(methodNames))
	}
	opts := []Option{
		WithMethod(m),
		WithCountThreshold(c.CountThreshold),
		WithSeed(c.Seed),
		WithEps(c.Eps),
		WithMaxPasses(c.MaxPasses),
		WithMaxAttempts(c.MaxAttempts),
	}
	if c.Unique {
		opts = append(opts, WithUnique())
	}
	if c.Parallel {
		opts = append(opts, WithParallel())
	}

	return opts
}
