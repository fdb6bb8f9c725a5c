package providers

import (
	"context"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math"
	"github.com/GriffinCanCode/sahasinha/internal/types"
)

// Provider is implemented by every tool provider
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

var _ Provider = (*math.Provider)(nil)

// NewMath creates the math provider
func NewMath() Provider {
	return math.NewProvider()
}

// All returns every available provider keyed by service ID
func All() map[string]Provider {
	all := map[string]Provider{}
	for _, p := range []Provider{NewMath()} {
		all[p.Definition().ID] = p
	}
	return all
}
