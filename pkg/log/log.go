// Package log provides a thin wrapper around the Go standard library logger.
// It adds:
//   - Named (component/source) loggers via ForSource(name)
//   - Automatic message prefix: "[<name>]"
//   - Warn and Debug levels (Info is the default level, Error is also provided)
//   - Ability to enable debug globally or selectively per source
//
// Each search source gets its own logger so that a failing backend can be
// diagnosed without drowning the output of the healthy ones.
//
// NOTE: The package name intentionally collides with stdlib "log". When
// importing this package alongside the standard library, alias one of them.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

// Level names used in output lines.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)

// Logger is a named logger with leveled helper methods.
type Logger struct {
	name string
	std  *log.Logger
}

// writerHolder wraps an io.Writer so that atomic.Value always stores the same
// concrete type when the destination changes (e.g. to a buffer in tests).
type writerHolder struct {
	w io.Writer
}

var (
	globalDebug atomic.Bool
	sourceDebug sync.Map // map[string]*atomic.Bool
	loggers     sync.Map // map[string]*Logger
	output      atomic.Value // writerHolder
)

func init() {
	output.Store(writerHolder{w: os.Stderr})
}

// ForSource returns (and memoizes) a named logger for the given component or
// search source. The name should be stable (e.g. "contacts", "api").
func ForSource(name string) *Logger {
	if name == "" {
		name = "unknown"
	}
	if l, ok := loggers.Load(name); ok {
		return l.(*Logger)
	}
	current := output.Load().(writerHolder).w
	logger := &Logger{
		name: name,
		std:  log.New(current, "", log.LstdFlags|log.Lmicroseconds),
	}
	actual, _ := loggers.LoadOrStore(name, logger)
	return actual.(*Logger)
}

// SetGlobalDebug enables or disables debug logging for every logger.
func SetGlobalDebug(enabled bool) {
	globalDebug.Store(enabled)
}

// EnableDebugFor enables debug logging for a single source.
func EnableDebugFor(name string) {
	if name == "" {
		return
	}
	val, _ := sourceDebug.LoadOrStore(name, &atomic.Bool{})
	val.(*atomic.Bool).Store(true)
}

// DebugEnabledFor reports whether debug is enabled for the given source,
// either globally or specifically.
func DebugEnabledFor(name string) bool {
	if globalDebug.Load() {
		return true
	}
	if val, ok := sourceDebug.Load(name); ok {
		return val.(*atomic.Bool).Load()
	}
	return false
}

// SetOutput sets the output writer for all current and future loggers.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	output.Store(writerHolder{w: w})
	loggers.Range(func(_, v any) bool {
		v.(*Logger).std.SetOutput(w)
		return true
	})
}

func (l *Logger) logInternal(level, msg string) {
	l.std.Println(level + " [" + l.name + "] " + msg)
}

// Infof logs an informational message with fmt.Sprintf semantics.
func (l *Logger) Infof(format string, args ...any) {
	l.logInternal(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logInternal(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logInternal(LevelError, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message if debug is enabled globally or for this source.
func (l *Logger) Debugf(format string, args ...any) {
	if !DebugEnabledFor(l.name) {
		return
	}
	l.logInternal(LevelDebug, fmt.Sprintf(format, args...))
}
