package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/common"
	"github.com/GriffinCanCode/sahasinha/internal/providers/math/operations"
	"github.com/GriffinCanCode/sahasinha/internal/providers/math/utilities"
	"github.com/GriffinCanCode/sahasinha/internal/types"
)

// Provider exposes the series operations as service tools
type Provider struct {
	series    *operations.SeriesOps
	constants *utilities.ConstantsOps
}

// NewProvider creates a math provider
func NewProvider() *Provider {
	ops := &common.MathOps{}

	return &Provider{
		series:    &operations.SeriesOps{MathOps: ops},
		constants: &utilities.ConstantsOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.series.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "π approximation by the Saha–Sinha series and its building blocks",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"series",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch toolID {
	case "math.factorial":
		return m.series.Factorial(ctx, params, appCtx)
	case "math.pochhammer":
		return m.series.Pochhammer(ctx, params, appCtx)
	case "math.pi.sahaSinha":
		return m.series.SahaSinha(ctx, params, appCtx)

	case "math.pi":
		return m.constants.Pi(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
