package structgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/structgo/record"
)

// Logger wraps slog.Logger with structgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// A nil handler falls back to an info-level text handler on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to
// stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithField adds a field name to the logger (useful for tagging accessors).
func (l *Logger) WithField(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", name),
	}
}

// WithStride adds a stride field to the logger.
func (l *Logger) WithStride(stride int) *Logger {
	return &Logger{
		Logger: l.Logger.With("stride", stride),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLayout logs the computed layout of a record definition, one entry per
// field plus a summary line with stride and packing efficiency.
func (l *Logger) LogLayout(ctx context.Context, def *record.Definition) {
	report := def.Report()
	for _, f := range report.Fields {
		l.DebugContext(ctx, "field placed",
			"name", f.Name,
			"type", f.Type,
			"offset", f.Offset,
			"size", f.Size,
			"padding", f.Padding,
		)
	}
	l.InfoContext(ctx, "layout computed",
		"fields", len(report.Fields),
		"stride", report.Stride,
		"align", report.Align,
		"used", report.Used,
		"wasted", report.Wasted,
		"efficiency", report.Efficiency,
	)
}

// LogGrow logs a container resize.
func (l *Logger) LogGrow(ctx context.Context, oldCap, newCap int) {
	l.DebugContext(ctx, "capacity changed",
		"old_capacity", oldCap,
		"new_capacity", newCap,
	)
}

// LogSnapshot logs a snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, records, blobSize int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"records", records,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot created",
			"records", records,
			"blob_size", blobSize,
		)
	}
}

// LogRestore logs a snapshot restore operation.
func (l *Logger) LogRestore(ctx context.Context, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "restore failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "restore completed",
			"records", records,
		)
	}
}

// LogLoad logs a memory-mapped load operation.
func (l *Logger) LogLoad(ctx context.Context, path string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"path", path,
			"records", records,
		)
	}
}
