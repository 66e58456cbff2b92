package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// FromContext retrieves the logger stored in the context, falling back
// to the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithGrade tags the context logger with the class label the operation
// targets.
func WithGrade(ctx context.Context, grade string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("grade", grade))
}
