// SPDX-License-Identifier: MIT

package clifford

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clifford-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds the algebra dimension to every record.
func (l *Logger) WithDimension(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", n),
	}
}

// LogProduct logs a geometric product.
func (l *Logger) LogProduct(ctx context.Context, nonZero int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "product failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "product completed",
			"non_zero", nonZero,
		)
	}
}

// LogInverse logs a multiplicative inverse. residual is the largest
// deviation of X·X⁻¹ from the identity.
func (l *Logger) LogInverse(ctx context.Context, residual float64, err error) {
	if err != nil {
		l.WarnContext(ctx, "inverse failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "inverse computed",
			"residual", residual,
		)
	}
}
