package common

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/sahasinha/internal/types"
)

// MathOps provides common math helpers
type MathOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumberOr extracts a number or falls back to def when the key is absent.
// A present but non-numeric value is reported as not ok.
func GetNumberOr(params map[string]interface{}, key string, def float64) (float64, bool) {
	if _, present := params[key]; !present {
		return def, true
	}
	return GetNumber(params, key)
}

// maxExactInt is the largest magnitude where every float64 integer is exact.
const maxExactInt = 1 << 53

// GetInt extracts a whole number. Fractional and out of range values are
// rejected.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	x, ok := GetNumber(params, key)
	if !ok || x != gomath.Trunc(x) || gomath.Abs(x) > maxExactInt {
		return 0, false
	}
	return int(x), true
}

// GetIntOr extracts a whole number or falls back to def when the key is absent.
func GetIntOr(params map[string]interface{}, key string, def int) (int, bool) {
	if _, present := params[key]; !present {
		return def, true
	}
	return GetInt(params, key)
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}
