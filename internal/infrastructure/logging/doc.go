// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// All output goes to stderr by default; the command writes its report to
// stdout and the two streams must not mix.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Debug("evaluated", zap.Float64("lambda", 10), zap.Int("terms", 60))
package logging
