package monitoring

import (
	"fmt"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/series"
	"github.com/GriffinCanCode/sahasinha/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Evaluation metrics
	Evaluations *prometheus.CounterVec
	TermsUsed   prometheus.Histogram
	AbsError    *prometheus.GaugeVec
	Approx      *prometheus.GaugeVec
}

// NewMetrics creates a metrics collector backed by its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sahasinha_evaluations_total",
				Help: "Total number of series evaluations by stop reason",
			},
			[]string{"stop"},
		),
		TermsUsed: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sahasinha_terms_used",
				Help:    "Number of terms summed per evaluation",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
		AbsError: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sahasinha_abs_error",
				Help: "Absolute error against math.Pi of the latest evaluation",
			},
			[]string{"lambda"},
		),
		Approx: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sahasinha_approximation",
				Help: "Latest approximation of pi",
			},
			[]string{"lambda"},
		),
	}
}

// Registry returns the registry the metrics are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordEvaluation records one series evaluation
func (m *Metrics) RecordEvaluation(lambda float64, res series.Result) {
	label := report.FormatLambda(lambda)

	m.Evaluations.WithLabelValues(string(res.Stop)).Inc()
	m.TermsUsed.Observe(float64(res.Terms))
	m.AbsError.WithLabelValues(label).Set(res.AbsError())
	m.Approx.WithLabelValues(label).Set(res.Approx)
}

// WriteTextfile writes all metrics to path in the text exposition format
// understood by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
