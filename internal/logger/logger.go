// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
	logOutput     io.Writer = io.Discard
)

// Init initializes the logger with a level and output writer.
// Subsequent calls are no-ops; use InitWithConfig for filter support.
func Init(level slog.Level, output io.Writer) {
	cfg := NewConfig()
	cfg.LogLevel = level.String()
	InitWithConfig(&cfg, output)
}

// InitWithConfig initializes the logger from a full Config, including
// tag/package/file filter lists.
func InitWithConfig(cfg *Config, output io.Writer) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		logOutput = output
		cfg.process()

		logLevel = new(slog.LevelVar)
		logLevel.Set(cfg.level.Level())

		opts := slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					source := a.Value.Any().(*slog.Source)
					source.File = filepath.Base(source.File)
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		base := slog.NewTextHandler(output, &opts)
		handler := newFilteringHandler(base, cfg)
		defaultLogger = slog.New(handler)

		// Emit the init message through the base handler directly so the
		// record doesn't pick up this function as its source.
		r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
		r.AddAttrs(slog.String("level", logLevel.Level().String()))
		_ = base.Handle(context.Background(), r)
	})
}

// ensureInitialized installs a discard logger if Init was never called.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel})
		defaultLogger = slog.New(handler)
	})
}

// logAtLevel creates and logs a record, capturing the caller of the
// public wrapper as the source location.
func logAtLevel(level slog.Level, attrs []slog.Attr, format string, args ...interface{}) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel, and the wrapper (Debugf etc.).
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(attrs...)
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, nil, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, nil, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, nil, format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, nil, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, nil, format, args...)
	os.Exit(1)
}

// DebugTagf logs a debug message carrying a filterable tag attribute.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, []slog.Attr{slog.String(tagKey, tag)}, format, args...)
}

// InfoTagf logs an info message carrying a filterable tag attribute.
func InfoTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, []slog.Attr{slog.String(tagKey, tag)}, format, args...)
}

// WarnTagf logs a warning message carrying a filterable tag attribute.
func WarnTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, []slog.Attr{slog.String(tagKey, tag)}, format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
