// Package config provides 12-factor configuration for the sahasinha command.
//
// Configuration is loaded from environment variables with defaults that
// reproduce the classic λ comparison report, so nothing needs
// to be set.
//
// Configuration Sections:
//   - Series: λ, term budget, truncation threshold, comparison list
//   - Logging: Log level and output format
//   - Metrics: Optional Prometheus textfile export
//
// Example Usage:
//
//	cfg, err := config.LoadOrDefault()
//	res := cfg.Series.Params().Eval()
//
// Environment Variables:
//   - PI_LAMBDA, PI_MAX_TERMS, PI_EPSILON, PI_SWEEP
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_TEXTFILE
package config
