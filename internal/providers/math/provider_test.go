package math

import (
	"context"
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/sahasinha/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	if !assert.True(t, result.Success) && result.Error != nil {
		t.Logf("error: %s", *result.Error)
	}
}

func assertFailure(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.NotNil(t, result.Error)
}

func TestDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)

	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.ElementsMatch(t, []string{"math.factorial", "math.pochhammer", "math.pi.sahaSinha", "math.pi"}, ids)
}

func TestMathProvider(t *testing.T) {
	provider := NewProvider()
	ctx := context.Background()

	t.Run("Factorial", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": 5}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 120.0, result.Data["result"])

		result, err = provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": 0.0}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 1.0, result.Data["result"])
	})

	t.Run("Factorial invalid", func(t *testing.T) {
		for _, params := range []map[string]interface{}{
			{},
			{"n": -1},
			{"n": 2.5},
			{"n": "5"},
			{"n": 200},
		} {
			result, err := provider.Execute(ctx, "math.factorial", params, nil)
			require.NoError(t, err)
			assertFailure(t, result)
		}
	})

	t.Run("Pochhammer", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.pochhammer", map[string]interface{}{"a": 2.0, "m": 3}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 24.0, result.Data["result"])

		result, err = provider.Execute(ctx, "math.pochhammer", map[string]interface{}{"a": -7.25, "m": 0}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 1.0, result.Data["result"])
	})

	t.Run("Pochhammer invalid", func(t *testing.T) {
		for _, params := range []map[string]interface{}{
			{"m": 3},
			{"a": 2.0},
			{"a": 2.0, "m": -1},
			{"a": gomath.NaN(), "m": 2},
			{"a": 1e300, "m": 3},
		} {
			result, err := provider.Execute(ctx, "math.pochhammer", params, nil)
			require.NoError(t, err)
			assertFailure(t, result)
		}
	})

	t.Run("SahaSinha defaults", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.pi.sahaSinha", map[string]interface{}{}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 3.1415926535897967, result.Data["result"])
		assert.Equal(t, 60, result.Data["terms"])
		assert.Equal(t, "max_terms", result.Data["stop"])
		assert.Equal(t, 10.0, result.Data["lambda"])
		assert.Less(t, result.Data["absError"].(float64), 1e-10)
	})

	t.Run("SahaSinha custom", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.pi.sahaSinha", map[string]interface{}{
			"lambda":   20,
			"maxTerms": 60.0,
			"epsilon":  1e-16,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 43, result.Data["terms"])
		assert.Equal(t, "converged", result.Data["stop"])
	})

	t.Run("SahaSinha zero terms", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.pi.sahaSinha", map[string]interface{}{"maxTerms": 0}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 4.0, result.Data["result"])
		assert.Equal(t, 0, result.Data["terms"])
	})

	t.Run("SahaSinha non-finite is not a failure", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.pi.sahaSinha", map[string]interface{}{"lambda": -1}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, "non_finite", result.Data["stop"])
		assert.Equal(t, 1, result.Data["terms"])
	})

	t.Run("SahaSinha invalid", func(t *testing.T) {
		for _, params := range []map[string]interface{}{
			{"lambda": "ten"},
			{"maxTerms": 1.5},
			{"maxTerms": -3},
			{"epsilon": 0.0},
			{"lambda": gomath.Inf(1)},
		} {
			result, err := provider.Execute(ctx, "math.pi.sahaSinha", params, nil)
			require.NoError(t, err)
			assertFailure(t, result)
		}
	})

	t.Run("Pi", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.pi", nil, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, gomath.Pi, result.Data["result"])
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.sin", nil, nil)
		require.NoError(t, err)
		assertFailure(t, result)
		assert.Equal(t, "unknown tool: math.sin", *result.Error)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := provider.Execute(cancelled, "math.pi", nil, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
