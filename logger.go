package guidetree

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with guide-tree specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSeed adds the RNG seed to the logger.
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithBuild tags all records of one build with its name.
func (l *Logger) WithBuild(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("build", name),
	}
}

// LogPhase logs the completion of a build phase (anchor selection,
// estimation, clustering, ...).
func (l *Logger) LogPhase(ctx context.Context, phase string, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "phase failed",
			"phase", phase,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "phase completed",
			"phase", phase,
			"elapsed", elapsed,
		)
	}
}

// LogBuild logs a finished build.
func (l *Logger) LogBuild(ctx context.Context, sequences, leaves int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"sequences", sequences,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"sequences", sequences,
			"leaves", leaves,
			"elapsed", elapsed,
		)
	}
}

// LogMerge logs one merge pass.
func (l *Logger) LogMerge(ctx context.Context, pass, merged int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge pass failed",
			"pass", pass,
			"merged", merged,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "merge pass completed",
			"pass", pass,
			"merged", merged,
			"elapsed", elapsed,
		)
	}
}

// LogSave logs persisting a tree.
func (l *Logger) LogSave(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "tree saved",
			"name", name,
		)
	}
}
