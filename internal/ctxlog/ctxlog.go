// Package ctxlog carries a *slog.Logger through context.Context so that
// loaders and commands log through the logger configured at startup.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to avoid collisions with keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default() when
// none was attached. Library callers that never configure logging still
// get a usable logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
