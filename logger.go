package raptor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with correction-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithKey adds the artifact key to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithParams adds the table-determining parameters to the logger.
func (l *Logger) WithParams(pattern, window, kmer int, fpr, pMax float64) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"pattern_size", pattern,
			"window_size", window,
			"kmer_size", kmer,
			"fpr", fpr,
			"p_max", pMax,
		),
	}
}

// LogLoad logs a cache lookup.
func (l *Logger) LogLoad(ctx context.Context, key string, hit bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "correction load failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "correction load completed",
			"key", key,
			"hit", hit,
		)
	}
}

// LogBuild logs a table computation.
func (l *Logger) LogBuild(ctx context.Context, entries int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "correction build failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "correction build completed",
			"entries", entries,
			"elapsed", elapsed,
		)
	}
}

// LogStore logs an artifact write.
func (l *Logger) LogStore(ctx context.Context, key string, attempt int, err error) {
	if err != nil {
		l.WarnContext(ctx, "correction store failed",
			"key", key,
			"attempt", attempt,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "correction stored",
			"key", key,
			"attempt", attempt,
		)
	}
}

// LogCorruption logs a stored artifact that is discarded and rebuilt.
func (l *Logger) LogCorruption(ctx context.Context, key string, err error) {
	l.WarnContext(ctx, "discarding stale correction artifact",
		"key", key,
		"error", err,
	)
}
