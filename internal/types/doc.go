// Package types defines the service surface shared by tool providers:
// service and tool descriptors, the execution context and the standard
// operation result.
package types
