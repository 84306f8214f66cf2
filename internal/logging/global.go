package logging

import (
	"context"
	"sync/atomic"
)

var (
	current atomic.Pointer[Logger]
	noop    = NewNoop()
)

// Global returns the process-wide logger, or a logger that discards
// everything when none has been installed.
func Global() *Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return noop
}

// SetGlobal installs l as the process-wide logger. Nil restores the
// discarding logger.
func SetGlobal(l *Logger) {
	current.Store(l)
}

// Ctx returns the global logger annotated with the catalog source and
// product id carried by ctx.
func Ctx(ctx context.Context) *Logger {
	return Global().WithContext(ctx)
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	Global().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	Global().Info(msg, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) {
	Global().Warn(msg, args...)
}

// Error logs an error message using the global logger.
func Error(msg string, args ...any) {
	Global().Error(msg, args...)
}

// With returns the global logger with args attached.
func With(args ...any) *Logger {
	return Global().With(args...)
}

// InitGlobal opens a file logger from cfg and installs it. A nil cfg uses
// DefaultConfig.
func InitGlobal(cfg *Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	if prev := current.Swap(l); prev != nil {
		_ = prev.Close()
	}
	return nil
}

// CloseGlobal closes the installed logger and falls back to discarding.
func CloseGlobal() error {
	if prev := current.Swap(nil); prev != nil {
		return prev.Close()
	}
	return nil
}
