// Package ctxlog carries a slog.Logger through context.Context so every
// layer logs through the logger the application configured, without
// threading a logger parameter through each call.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so this package's context entry cannot collide with
// context keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx. When ctx carries none (library
// use outside the CLI), the process default logger is returned so callers
// never need a nil check.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a copy of ctx whose logger carries the extra attributes.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
