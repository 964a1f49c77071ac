// FILE: interface.go
package funnel

import (
	"time"
)

// Sink receives every entry dispatched by a Logger it is registered with.
//
// Log may be called concurrently from many goroutines and must serialize its
// own state. The data map is shared by all sinks of one dispatch and must not
// be modified. Flush is only called on fatal escalation while the Logger's
// write lock is held, so it must not call back into the same Logger.
type Sink interface {
	Log(timestamp time.Time, level Level, message string, data Fields)
	Flush()
}

// Logger instance methods for logging at fixed levels.

// Debug logs a message at debug level.
func (l *Logger) Debug(message string, data ...Fields) {
	l.Log(LevelDebug, message, data...)
}

// Info logs a message at info level.
func (l *Logger) Info(message string, data ...Fields) {
	l.Log(LevelInfo, message, data...)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(message string, data ...Fields) {
	l.Log(LevelWarning, message, data...)
}

// Error logs a message at error level.
func (l *Logger) Error(message string, data ...Fields) {
	l.Log(LevelError, message, data...)
}

// Fatal logs a message at fatal level, flushes every sink and terminates the
// process through the fatal handler. It never returns: if a custom handler
// returns, Fatal panics with the formatted message.
func (l *Logger) Fatal(message string, data ...Fields) {
	fields := mergeFields(data)
	l.Log(LevelFatal, message, fields)
	panic(messageWithData(message, fields))
}
