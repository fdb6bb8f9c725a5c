// Package report renders series results as the plain-text report printed by
// the sahasinha command.
package report

import (
	"fmt"
	"io"
	gomath "math"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/series"
)

// Header writes the detailed block for the default λ.
func Header(w io.Writer, lambda float64, res series.Result) error {
	_, err := fmt.Fprintf(w,
		"Saha–Sinha series with λ=%s\n  π ≈ %s\n  terms used: %d\n  |error|    : %s\n",
		FormatLambda(lambda), formatFixed(res.Approx, 17), res.Terms, FormatSci(res.AbsError()))
	return err
}

// Line writes the one-line summary used for the λ comparison.
func Line(w io.Writer, lambda float64, res series.Result) error {
	_, err := fmt.Fprintf(w, "λ=%-4s -> π≈%s  terms=%d  |err|=%s\n",
		FormatLambda(lambda), formatFixed(res.Approx, 15), res.Terms, FormatSci(res.AbsError()))
	return err
}

// FormatLambda renders x as the shortest decimal that round-trips, without
// an exponent or a trailing ".0" (10, 2.5, 0.001).
func FormatLambda(x float64) string {
	if s, ok := nonFinite(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FormatSci renders x with three fractional digits in exponent form, with
// the exponent unsigned when positive and never zero-padded
// (3.553e-15, 1.500e2, 0.000e0).
func FormatSci(x float64) string {
	if s, ok := nonFinite(x); ok {
		return s
	}
	s := strconv.FormatFloat(x, 'e', 3, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "e" + strconv.Itoa(n)
}

// formatFixed renders x with prec fractional digits.
func formatFixed(x float64, prec int) string {
	if s, ok := nonFinite(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}

// nonFinite spells NaN and ±Inf as inf, -inf and NaN.
func nonFinite(x float64) (string, bool) {
	switch {
	case gomath.IsNaN(x):
		return "NaN", true
	case gomath.IsInf(x, 1):
		return "inf", true
	case gomath.IsInf(x, -1):
		return "-inf", true
	}
	return "", false
}
