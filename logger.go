package vecload

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the structured logger used for skip diagnostics and per-call
// outcomes. Every entry carries the same field names: source, index, size,
// expected, kind, written, records.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text to stderr at Warn, the
// level at which skipped records become visible.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelWarn)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON lines to stderr at level and above.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value text to stderr at level and above.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds a source field (file path, blob name or input kind).
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogSkip logs a record that was skipped because of its size.
func (l *Logger) LogSkip(ctx context.Context, index, actual, expected int) {
	l.WarnContext(ctx, "record size mismatch, skipping",
		"index", index,
		"size", actual,
		"expected", expected,
	)
}

// LogIngest logs the outcome of one ingestion call.
func (l *Logger) LogIngest(ctx context.Context, kind string, r *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"kind", kind,
			"written", r.Written,
			"records", r.Records,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "ingest completed",
		"kind", kind,
		"written", r.Written,
		"records", r.Records,
		"skipped", len(r.Skipped),
		"duration", r.Duration,
	)
}
