// Package common holds the parameter decoding and result helpers shared by
// the math tool operations.
//
// Tool parameters arrive as map[string]interface{} decoded from JSON, so
// numbers may be float64, int, int64 or float32. User errors become a
// failed types.Result, never a Go error.
package common
