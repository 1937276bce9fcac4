package supertrie

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with index specific helpers.
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
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithUniverse adds a universe size field to the logger.
func (l *Logger) WithUniverse(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("universe", n),
	}
}

// WithWidth adds a width bound field to the logger.
func (l *Logger) WithWidth(w int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", w),
	}
}

// WithSeed adds a random seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogCreate logs the construction of an index.
func (l *Logger) LogCreate(fastPath bool, policy RebuildPolicy) {
	l.Debug("index created",
		"fast_path", fastPath,
		"policy", policy,
	)
}

// LogRejected logs a call refused because of a bad argument.
func (l *Logger) LogRejected(op string, err error) {
	l.Error(op+" rejected",
		"error", err,
	)
}

// LogRebuild logs a completed rebuild.
func (l *Logger) LogRebuild(entries, nodes int, reordered bool, duration time.Duration) {
	l.Info("trie rebuilt",
		"entries", entries,
		"nodes", nodes,
		"reordered", reordered,
		"duration", duration,
	)
}

// LogAudit logs the outcome of an audit.
func (l *Logger) LogAudit(entries int, err error) {
	if err != nil {
		l.Error("audit failed",
			"entries", entries,
			"error", err,
		)
	} else {
		l.Debug("audit passed",
			"entries", entries,
		)
	}
}
