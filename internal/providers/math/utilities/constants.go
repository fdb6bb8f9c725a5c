package utilities

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/common"
	"github.com/GriffinCanCode/sahasinha/internal/types"
)

// ConstantsOps provides reference constants
type ConstantsOps struct {
	*common.MathOps
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.pi",
			Name:        "Pi (π)",
			Description: "Get the float64 reference value of π",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
	}
}

// Pi returns π
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Pi})
}
