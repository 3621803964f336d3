package lineset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lineset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithElement adds the element name to the logger.
func (l *Logger) WithElement(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("element", name),
	}
}

// WithCells adds a cell (segment) count field to the logger.
func (l *Logger) WithCells(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cells", count),
	}
}

// WithNodes adds a node (vertex) count field to the logger.
func (l *Logger) WithNodes(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("nodes", count),
	}
}

// LogExport logs an export operation. Element and size fields are
// expected to be attached up front via WithElement, WithNodes and
// WithCells.
func (l *Logger) LogExport(ctx context.Context, polylines int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "export completed",
			"polylines", polylines,
		)
	}
}

// LogBatchExport logs a batch export operation.
func (l *Logger) LogBatchExport(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch export failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch export completed",
			"count", count,
		)
	}
}
