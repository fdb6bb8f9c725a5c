package app

import (
	"context"
	"fmt"
	"io"

	"github.com/GriffinCanCode/sahasinha/internal/infrastructure/config"
	"github.com/GriffinCanCode/sahasinha/internal/infrastructure/logging"
	"github.com/GriffinCanCode/sahasinha/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/sahasinha/internal/providers/math/series"
	"github.com/GriffinCanCode/sahasinha/internal/report"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Entry is one evaluated λ.
type Entry struct {
	Lambda float64
	Result series.Result
}

// Summary collects everything a run evaluated.
type Summary struct {
	Default Entry
	Sweep   []Entry
	// Best indexes the sweep entry with the smallest absolute error, -1 when
	// the sweep is empty.
	Best int
}

// BestEntry returns the sweep entry with the smallest absolute error.
func (s *Summary) BestEntry() (Entry, bool) {
	if s.Best < 0 || s.Best >= len(s.Sweep) {
		return Entry{}, false
	}
	return s.Sweep[s.Best], true
}

// Runner evaluates the configured λ values and writes the report.
type Runner struct {
	cfg     config.SeriesConfig
	out     io.Writer
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewRunner creates a runner writing its report to out. logger and metrics
// may be nil.
func NewRunner(cfg config.SeriesConfig, out io.Writer, logger *logging.Logger, metrics *monitoring.Metrics) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		out:     out,
		logger:  logger,
		metrics: metrics,
	}
}

// Run evaluates the default λ, then every λ of the sweep with the same
// term budget and threshold.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{Best: -1}

	summary.Default = r.evaluate(r.cfg.Lambda)
	if err := report.Header(r.out, summary.Default.Lambda, summary.Default.Result); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}

	summary.Sweep = make([]Entry, 0, len(r.cfg.Sweep))
	for _, lambda := range r.cfg.Sweep {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		entry := r.evaluate(lambda)
		summary.Sweep = append(summary.Sweep, entry)
		if err := report.Line(r.out, entry.Lambda, entry.Result); err != nil {
			return summary, fmt.Errorf("failed to write report: %w", err)
		}
	}

	if len(summary.Sweep) > 0 {
		errs := make([]float64, len(summary.Sweep))
		for i, entry := range summary.Sweep {
			errs[i] = entry.Result.AbsError()
		}
		summary.Best = floats.MinIdx(errs)

		best := summary.Sweep[summary.Best]
		r.logger.Info("sweep complete",
			zap.Float64("best_lambda", best.Lambda),
			zap.Float64("abs_error", best.Result.AbsError()),
			zap.Int("terms", best.Result.Terms),
		)
	}

	return summary, nil
}

func (r *Runner) evaluate(lambda float64) Entry {
	res := r.cfg.ParamsFor(lambda).Eval()

	r.logger.Debug("series evaluated",
		zap.Float64("lambda", lambda),
		zap.Int("max_terms", r.cfg.MaxTerms),
		zap.Float64("epsilon", r.cfg.Epsilon),
		zap.Int("terms", res.Terms),
		zap.String("stop", string(res.Stop)),
		zap.Float64("approx", res.Approx),
		zap.Float64("abs_error", res.AbsError()),
	)
	if res.Stop == series.StopNonFinite {
		r.logger.Warn("series truncated on non-finite term",
			zap.Float64("lambda", lambda),
			zap.Int("terms", res.Terms),
		)
	}
	if r.metrics != nil {
		r.metrics.RecordEvaluation(lambda, res)
	}

	return Entry{Lambda: lambda, Result: res}
}
