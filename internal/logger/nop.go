// Package logger provides the logger implementations the engine falls back
// on when the caller does not configure one.
package logger

import "github.com/tdmkit/dvec/types"

// NopLogger discards every message. Vectors built without WithLogger use it,
// so the engine stays silent unless a consumer opts in.
type NopLogger struct{}

var _ types.Logger = NopLogger{}

// NewNop returns the discarding logger.
//
// Returns:
//   - *NopLogger: Logger that performs no operations
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (NopLogger) Error(string, ...any) {}

// Fatal discards the message and, unlike production loggers, does NOT
// terminate the process. A library default must never exit its host.
func (NopLogger) Fatal(string, ...any) {}
