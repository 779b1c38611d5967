package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// loggerKey is the context key for request-scoped loggers.
type loggerKey struct{}

// WithContext stores l in the returned context.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx. When none is stored it
// returns a shared warn-level stderr logger, so log calls never vanish.
// Code that runs outside a request, such as startup or background
// workers, should receive its logger explicitly instead.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return fallback()
}

var (
	fallbackOnce sync.Once
	fallbackLog  Logger
)

// fallback lazily builds the shared stderr logger. Warn level keeps it
// quiet unless something is actually wrong.
func fallback() Logger {
	fallbackOnce.Do(func() {
		l, err := New(Config{Level: "warn", OutputPaths: []string{"stderr"}})
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: fallback construction failed: %v\n", err)
			l = NewNop()
		}
		fallbackLog = l
	})
	return fallbackLog
}
