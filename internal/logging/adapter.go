// Package logging bridges the structured zap-backed logger to the
// key/value logging interface used by the batch processor.
package logging

import (
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// pairWidth is the number of elements consumed per key-value pair.
const pairWidth = 2

// Logger is the key/value logging interface consumed by packages that
// do not want a direct dependency on the structured logger.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

// Adapter exposes a structured logger through the Logger interface.
type Adapter struct {
	log logger.Logger
}

// NewAdapter wraps log in an Adapter.
func NewAdapter(log logger.Logger) *Adapter {
	return &Adapter{log: log}
}

// Info logs an info message with key-value pairs.
func (a *Adapter) Info(msg string, keysAndValues ...any) {
	a.log.Info(msg, toFields(keysAndValues)...)
}

// Error logs an error message with key-value pairs.
func (a *Adapter) Error(msg string, keysAndValues ...any) {
	a.log.Error(msg, toFields(keysAndValues)...)
}

// Warn logs a warning message with key-value pairs.
func (a *Adapter) Warn(msg string, keysAndValues ...any) {
	a.log.Warn(msg, toFields(keysAndValues)...)
}

// Debug logs a debug message with key-value pairs.
func (a *Adapter) Debug(msg string, keysAndValues ...any) {
	a.log.Debug(msg, toFields(keysAndValues)...)
}

// toFields converts a flat key-value list to logger fields. Keys that
// are not strings and a trailing key without a value are dropped.
func toFields(keysAndValues []any) []logger.Field {
	fields := make([]logger.Field, 0, len(keysAndValues)/pairWidth)
	for i := 0; i+1 < len(keysAndValues); i += pairWidth {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, logger.Any(key, keysAndValues[i+1]))
	}
	return fields
}
