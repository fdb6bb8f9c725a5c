package config

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/series"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Series  SeriesConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// SeriesConfig holds the series evaluation parameters.
type SeriesConfig struct {
	Lambda   float64   `envconfig:"PI_LAMBDA" default:"10"`
	MaxTerms int       `envconfig:"PI_MAX_TERMS" default:"60"`
	Epsilon  float64   `envconfig:"PI_EPSILON" default:"1e-16"`
	Sweep    []float64 `envconfig:"PI_SWEEP" default:"3,5,10,20"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `envconfig:"METRICS_TEXTFILE"`
}

// Params returns the series parameters for the default λ.
func (s SeriesConfig) Params() series.Params {
	return s.ParamsFor(s.Lambda)
}

// ParamsFor returns the series parameters with λ replaced.
func (s SeriesConfig) ParamsFor(lambda float64) series.Params {
	return series.Params{
		Lambda:   lambda,
		MaxTerms: s.MaxTerms,
		Epsilon:  s.Epsilon,
	}
}

// Validate checks the series section.
func (c *Config) Validate() error {
	if err := c.Series.Params().Validate(); err != nil {
		return err
	}
	for i, lambda := range c.Series.Sweep {
		if gomath.IsNaN(lambda) || gomath.IsInf(lambda, 0) {
			return fmt.Errorf("%w: sweep[%d] must be finite, got %v", series.ErrInvalidParams, i, lambda)
		}
	}
	return nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
// The load error, if any, is returned alongside so callers can report it.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Series: SeriesConfig{
			Lambda:   series.DefaultLambda,
			MaxTerms: series.DefaultMaxTerms,
			Epsilon:  series.DefaultEpsilon,
			Sweep:    []float64{3, 5, 10, 20},
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}
