// Package app runs the π report.
//
// Runner evaluates the default λ and then every λ of the comparison sweep
// with the same term budget and threshold, writes the report lines as it
// goes, records each evaluation in the optional metrics and returns a
// Summary naming the λ with the smallest absolute error.
//
// Example Usage:
//
//	runner := app.NewRunner(cfg.Series, os.Stdout, logger, metrics)
//	summary, err := runner.Run(ctx)
package app
