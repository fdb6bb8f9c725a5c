// Package main is the entry point for the sahasinha command.
//
// It approximates π with the Saha–Sinha series for a default λ and for a
// list of comparison values, printing the approximation, the number of
// terms used and the absolute error against math.Pi:
//
//	Saha–Sinha series with λ=10
//	  π ≈ 3.14159265358979667
//	  terms used: 60
//	  |error|    : 3.553e-15
//	λ=3    -> π≈3.141592657887732  terms=60  |err|=4.298e-9
//	...
//
// No flags are read. Every parameter has a default and can be overridden
// through the environment:
//   - PI_LAMBDA, PI_MAX_TERMS, PI_EPSILON, PI_SWEEP
//   - LOG_LEVEL, LOG_DEV (logs go to stderr)
//   - METRICS_TEXTFILE (Prometheus textfile written after the run)
//
// The process always exits with status 0.
package main
