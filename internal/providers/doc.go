// Package providers defines the tool provider interface and constructs the
// available providers.
//
// Available Providers:
//   - Math: Saha–Sinha π series, factorial, Pochhammer symbol, π constant
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	m := providers.NewMath()
//	result, err := m.Execute(ctx, "math.pi.sahaSinha", map[string]interface{}{"lambda": 20}, nil)
package providers
