// FILE: default.go
package funnel

import (
	"sync/atomic"
)

// shared is the process-wide instance used by package-level functions
var shared atomic.Pointer[Logger]

func init() {
	shared.Store(NewLogger())
}

// Shared returns the current process-wide Logger.
func Shared() *Logger {
	return shared.Load()
}

// SetShared installs l as the process-wide Logger and returns the previous one.
// A nil l installs a fresh Logger with no sinks.
//
// Replacement is atomic but not coordinated with calls already in flight on
// the previous Logger; those complete against it.
func SetShared(l *Logger) *Logger {
	if l == nil {
		l = NewLogger()
	}
	return shared.Swap(l)
}

// Default package-level functions that delegate to the shared logger

// Add registers a sink with the shared logger
func Add(sink Sink) {
	shared.Load().Add(sink)
}

// Remove unregisters a sink from the shared logger
func Remove(sink Sink) {
	shared.Load().Remove(sink)
}

// Log dispatches an entry at the given level through the shared logger
func Log(level Level, message string, data ...Fields) {
	shared.Load().Log(level, message, data...)
}

// Debug logs a message at debug level
func Debug(message string, data ...Fields) {
	shared.Load().Debug(message, data...)
}

// Info logs a message at info level
func Info(message string, data ...Fields) {
	shared.Load().Info(message, data...)
}

// Warning logs a message at warning level
func Warning(message string, data ...Fields) {
	shared.Load().Warning(message, data...)
}

// Error logs a message at error level
func Error(message string, data ...Fields) {
	shared.Load().Error(message, data...)
}

// Fatal logs a message at fatal level through the shared logger and terminates
func Fatal(message string, data ...Fields) {
	shared.Load().Fatal(message, data...)
}
