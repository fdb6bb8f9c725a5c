package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/sahasinha/internal/app"
	"github.com/GriffinCanCode/sahasinha/internal/infrastructure/config"
	"github.com/GriffinCanCode/sahasinha/internal/infrastructure/logging"
	"github.com/GriffinCanCode/sahasinha/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, os.Stdout)
}

// run prints the report to stdout. Failures are logged, never turned into a
// non-zero exit status.
func run(ctx context.Context, stdout io.Writer) {
	cfg, cfgErr := config.LoadOrDefault()

	logger, err := logging.New(logging.ConfigFor(cfg.Logging.Level, cfg.Logging.Development))
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("Invalid logging config, using defaults", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	if cfgErr != nil {
		logger.Warn("Invalid environment, using default configuration", zap.Error(cfgErr))
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.TextfilePath != "" {
		metrics = monitoring.NewMetrics()
	}

	runner := app.NewRunner(cfg.Series, stdout, logger, metrics)
	if _, err := runner.Run(ctx); err != nil {
		logger.Error("Run failed", zap.Error(err))
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Error("Metrics export failed", zap.Error(err))
		}
	}
}
