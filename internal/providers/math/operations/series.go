package operations

import (
	"context"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/common"
	"github.com/GriffinCanCode/sahasinha/internal/providers/math/series"
	"github.com/GriffinCanCode/sahasinha/internal/types"
)

// SeriesOps exposes the Saha–Sinha series and its building blocks as tools
type SeriesOps struct {
	*common.MathOps
}

// GetTools returns series tool definitions
func (s *SeriesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Calculate factorial (n!) as a float",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.pochhammer",
			Name:        "Pochhammer Symbol",
			Description: "Calculate the rising factorial (a)_m = a(a+1)...(a+m-1)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Base", Required: true},
				{Name: "m", Type: "number", Description: "Non-negative integer count", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.pi.sahaSinha",
			Name:        "Saha–Sinha π Series",
			Description: "Approximate π with the Saha–Sinha series",
			Parameters: []types.Parameter{
				{Name: "lambda", Type: "number", Description: "Convergence parameter (default: 10)", Required: false},
				{Name: "maxTerms", Type: "number", Description: "Term budget (default: 60)", Required: false},
				{Name: "epsilon", Type: "number", Description: "Truncation threshold (default: 1e-16)", Required: false},
			},
			Returns: "object",
		},
	}
}

// Factorial calculates n!
func (s *SeriesOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (integer)")
	}
	if n < 0 {
		return common.Failure("n must be non-negative integer")
	}

	result := series.Factorial(n)
	if err := common.ValidateNumber(result, "result"); err != nil {
		return common.Failure("factorial overflow")
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Pochhammer calculates the rising factorial
func (s *SeriesOps) Pochhammer(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	if err := common.ValidateNumber(a, "a"); err != nil {
		return common.Failure(err.Error())
	}

	m, ok := common.GetInt(params, "m")
	if !ok {
		return common.Failure("m parameter required (integer)")
	}
	if m < 0 {
		return common.Failure("m must be non-negative integer")
	}

	result := series.Pochhammer(a, m)
	if err := common.ValidateNumber(result, "result"); err != nil {
		return common.Failure("pochhammer overflow")
	}

	return common.Success(map[string]interface{}{"result": result})
}

// SahaSinha approximates π. A non-finite partial sum is returned as a
// successful result with stop reason "non_finite", mirroring the series
// package.
func (s *SeriesOps) SahaSinha(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, errMsg := seriesParams(params)
	if errMsg != "" {
		return common.Failure(errMsg)
	}
	if err := p.Validate(); err != nil {
		return common.Failure(err.Error())
	}

	res := p.Eval()
	return common.Success(map[string]interface{}{
		"result":   res.Approx,
		"terms":    res.Terms,
		"stop":     string(res.Stop),
		"absError": res.AbsError(),
		"lambda":   p.Lambda,
	})
}

func seriesParams(params map[string]interface{}) (series.Params, string) {
	p := series.DefaultParams()

	var ok bool
	if p.Lambda, ok = common.GetNumberOr(params, "lambda", p.Lambda); !ok {
		return p, "lambda must be a number"
	}
	if p.MaxTerms, ok = common.GetIntOr(params, "maxTerms", p.MaxTerms); !ok {
		return p, "maxTerms must be an integer"
	}
	if p.Epsilon, ok = common.GetNumberOr(params, "epsilon", p.Epsilon); !ok {
		return p, "epsilon must be a number"
	}
	return p, ""
}
