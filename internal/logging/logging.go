// Package logging wraps log/slog with dispatch-specific helpers.
//
// The default logger writes text records to stderr at the level given by the
// DISPATCH_LOG_LEVEL environment variable (warn when unset), so resolution and
// detection records only show up when explicitly requested.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// EnvLevel names the environment variable holding the default log level.
const EnvLevel = "DISPATCH_LOG_LEVEL"

// Logger wraps slog.Logger with dispatch-specific context.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at LevelFromEnv.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: LevelFromEnv(),
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// Wrap adapts an existing slog.Logger. A nil logger yields Default().
func Wrap(l *slog.Logger) *Logger {
	if l == nil {
		return Default()
	}
	return &Logger{Logger: l}
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

var defaultLogger atomic.Pointer[Logger]

// Default returns the process-wide logger.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, New(nil))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger restores the
// environment-configured default.
func SetDefault(l *Logger) {
	if l == nil {
		l = New(nil)
	}
	defaultLogger.Store(l)
}

// LevelFromEnv parses EnvLevel. Unknown or empty values yield slog.LevelWarn.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(EnvLevel))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog
// levels. Anything else is warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// WithTable adds the dispatch table name.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{Logger: l.Logger.With("table", name)}
}

// LogDetected records a published feature snapshot.
func (l *Logger) LogDetected(arch string, features string, count int) {
	l.Debug("cpu features detected",
		"arch", arch,
		"features", features,
		"count", count,
	)
}

// LogResolved records the entry point committed for a table.
func (l *Logger) LogResolved(table, variant, requirement string, fallback bool) {
	l.Debug("dispatch resolved",
		"table", table,
		"variant", variant,
		"requirement", requirement,
		"default", fallback,
	)
}

// LogIgnoredFeature records a configuration entry that named no known feature.
func (l *Logger) LogIgnoredFeature(source, name, arch string) {
	l.Warn("ignoring unknown cpu feature",
		"source", source,
		"feature", name,
		"arch", arch,
	)
}

// LogIgnoredSetting records an unrecognized configuration value.
func (l *Logger) LogIgnoredSetting(key, value string) {
	l.Warn("ignoring unrecognized setting",
		"key", key,
		"value", value,
	)
}
