// Package series evaluates the Saha–Sinha series for π.
//
//	π = 4 + Σ_{n≥1} (1/n!) · (1/(n+λ) − 4/(2n+1)) · ((2n+1)²/(4(n+λ)) − n)_{n−1}
//
// λ is a free real parameter. It moves the poles of the rational factors,
// trading convergence speed against conditioning of the early terms.
//
// Everything here is pure float64 arithmetic:
//   - Factorial: n! by iterative multiplication
//   - Pochhammer: rising factorial (a)_m
//   - SahaSinha: truncated summation with early stopping
//
// Example Usage:
//
//	res := series.SahaSinha(10, 60, 1e-16)
//	fmt.Printf("%.17f (%d terms, %s)\n", res.Approx, res.Terms, res.Stop)
package series
