// SPDX-License-Identifier: MIT

package tensor

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lvtensor field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithOp tags records with the operation name.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// LogKernel records a kernel dispatch at Debug level.
func (l *Logger) LogKernel(ctx context.Context, op string, outputs, workers int) {
	l.DebugContext(ctx, "kernel dispatch", "op", op, "outputs", outputs, "workers", workers)
}

// LogError records a failed operation.
func (l *Logger) LogError(ctx context.Context, op string, err error) {
	l.ErrorContext(ctx, "operation failed", "op", op, "error", err)
}
