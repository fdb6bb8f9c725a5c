/*
Package monitoring provides metrics collection for series evaluations.

# Overview

Metrics live in a private Prometheus registry so tests and repeated runs
never collide on the global default registerer.

# Metrics

  - sahasinha_evaluations_total{stop}: evaluations by stop reason
  - sahasinha_terms_used: histogram of terms summed
  - sahasinha_abs_error{lambda}: |approximation - π| of the latest run
  - sahasinha_approximation{lambda}: latest approximation

# Usage

	metrics := monitoring.NewMetrics()
	metrics.RecordEvaluation(lambda, res)

	// node exporter textfile collector
	if err := metrics.WriteTextfile("/var/lib/node_exporter/sahasinha.prom"); err != nil {
		logger.Warn("metrics export failed", zap.Error(err))
	}
*/
package monitoring
