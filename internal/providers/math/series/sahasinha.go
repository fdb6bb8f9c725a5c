package series

import (
	"errors"
	"fmt"
	gomath "math"
)

// Defaults used by the command line driver.
const (
	DefaultLambda   = 10.0
	DefaultMaxTerms = 60
	DefaultEpsilon  = 1e-16
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid series parameters")

// StopReason records why summation ended
type StopReason string

const (
	StopMaxTerms  StopReason = "max_terms"
	StopConverged StopReason = "converged"
	StopNonFinite StopReason = "non_finite"
)

// Params groups the inputs of one evaluation.
type Params struct {
	Lambda   float64
	MaxTerms int
	Epsilon  float64
}

// DefaultParams returns λ=10, 60 terms, ε=1e-16.
func DefaultParams() Params {
	return Params{
		Lambda:   DefaultLambda,
		MaxTerms: DefaultMaxTerms,
		Epsilon:  DefaultEpsilon,
	}
}

// Validate checks that the parameters describe a meaningful evaluation.
func (p Params) Validate() error {
	if gomath.IsNaN(p.Lambda) || gomath.IsInf(p.Lambda, 0) {
		return fmt.Errorf("%w: lambda must be finite, got %v", ErrInvalidParams, p.Lambda)
	}
	if p.MaxTerms < 0 {
		return fmt.Errorf("%w: max terms must be non-negative, got %d", ErrInvalidParams, p.MaxTerms)
	}
	if !(p.Epsilon > 0) || gomath.IsInf(p.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be positive and finite, got %v", ErrInvalidParams, p.Epsilon)
	}
	return nil
}

// Result is the outcome of a single evaluation.
type Result struct {
	Approx float64
	Terms  int
	Stop   StopReason
}

// AbsError returns |Approx - π|.
func (r Result) AbsError() float64 {
	return gomath.Abs(r.Approx - gomath.Pi)
}

// Eval runs SahaSinha with p.
func (p Params) Eval() Result {
	return SahaSinha(p.Lambda, p.MaxTerms, p.Epsilon)
}

// Evaluate returns the approximation and the number of terms summed.
func Evaluate(lambda float64, maxTerms int, eps float64) (float64, int) {
	res := SahaSinha(lambda, maxTerms, eps)
	return res.Approx, res.Terms
}

// SahaSinha sums the series for n = 1..maxTerms and returns 4 + sum.
//
// Summation stops after the first term that is NaN/±Inf or whose magnitude
// is below eps; that term is still included. A non-finite term is not an
// error, the partial (possibly non-finite) sum is returned as is.
func SahaSinha(lambda float64, maxTerms int, eps float64) Result {
	res := Result{Stop: StopMaxTerms}
	sum := 0.0

	// n starts at 1 so the Pochhammer count n-1 is never negative.
	for n := 1; n <= maxTerms; n++ {
		nf := float64(n)
		odd := 2*nf + 1

		a := 1/(nf+lambda) - 4/odd
		b := odd*odd/(4*(nf+lambda)) - nf

		// explicit conversion keeps the product from being fused into the sum
		term := float64((1 / Factorial(n)) * a * Pochhammer(b, n-1))

		sum += term
		res.Terms = n

		if gomath.IsNaN(term) || gomath.IsInf(term, 0) {
			res.Stop = StopNonFinite
			break
		}
		if gomath.Abs(term) < eps {
			res.Stop = StopConverged
			break
		}
	}

	res.Approx = 4 + sum
	return res
}
