package tablestore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithTable adds a table field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// LogPut logs a table write.
func (l *Logger) LogPut(ctx context.Context, table string, width, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "put failed",
			"table", table,
			"width", width,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "put completed",
			"table", table,
			"width", width,
			"bytes", bytes,
		)
	}
}

// LogGet logs a table read.
func (l *Logger) LogGet(ctx context.Context, table string, width, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "get failed",
			"table", table,
			"width", width,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "get completed",
			"table", table,
			"width", width,
			"bytes", bytes,
		)
	}
}

// LogDelete logs a table deletion.
func (l *Logger) LogDelete(ctx context.Context, table string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "delete failed",
			"table", table,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "delete completed",
			"table", table,
		)
	}
}

// LogBulk logs a PutAll or GetAll operation.
func (l *Logger) LogBulk(ctx context.Context, op string, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, op+" completed with failures",
			"count", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, op+" completed",
			"count", count,
		)
	}
}
