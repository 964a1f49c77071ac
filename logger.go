// FILE: logger.go
package funnel

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"sync"
	"time"
)

// Logger is a concurrency-safe registry of sinks. Every log call is fanned
// out synchronously to all registered sinks in registration order.
type Logger struct {
	mu           sync.RWMutex
	sinks        []Sink
	fatalHandler func(msg string)
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithSinks registers initial sinks in the given order.
func WithSinks(sinks ...Sink) Option {
	return func(l *Logger) {
		for _, sink := range sinks {
			if sink != nil {
				l.sinks = append(l.sinks, sink)
			}
		}
	}
}

// WithFatalHandler replaces the process-terminating step of fatal escalation.
// The handler receives the formatted message after every sink was flushed.
// A nil handler restores the default.
func WithFatalHandler(handler func(msg string)) Option {
	return func(l *Logger) {
		if handler == nil {
			handler = defaultFatalHandler
		}
		l.fatalHandler = handler
	}
}

// NewLogger creates a Logger with no sinks unless options add some.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{
		fatalHandler: defaultFatalHandler,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add registers a sink. Duplicates are allowed and receive each entry once
// per registration. A nil sink is ignored.
func (l *Logger) Add(sink Sink) {
	if sink == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, sink)
}

// Remove unregisters the first registration identical to sink.
// Removing a sink that is not registered is a no-op.
func (l *Logger) Remove(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.sinks {
		if sameSink(s, sink) {
			l.sinks = slices.Delete(l.sinks, i, i+1)
			return
		}
	}
}

// Sinks returns a snapshot of the registered sinks in order.
func (l *Logger) Sinks() []Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.sinks)
}

// Len returns the number of registrations.
func (l *Logger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sinks)
}

// Log dispatches one entry to every registered sink with a single timestamp.
// At fatal level it then flushes all sinks and invokes the fatal handler.
func (l *Logger) Log(level Level, message string, data ...Fields) {
	fields := mergeFields(data)
	timestamp := time.Now()

	l.dispatch(timestamp, level, message, fields)

	// Levels outside the defined range dispatch without escalating
	if level != LevelFatal {
		return
	}

	// The write lock is never released. Dispatches and registry changes from
	// any goroutine block from here on while sinks flush and the process ends.
	l.mu.Lock()
	for _, sink := range l.sinks {
		sink.Flush()
	}
	l.fatalHandler(messageWithData(message, fields))
}

// dispatch delivers the entry under the read lock, released even if a sink panics
func (l *Logger) dispatch(timestamp time.Time, level Level, message string, data Fields) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, sink := range l.sinks {
		sink.Log(timestamp, level, message, data)
	}
}

// sameSink reports interface identity, treating non-comparable values as distinct
func sameSink(a, b Sink) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// defaultFatalHandler writes the diagnostic to stderr and exits
func defaultFatalHandler(msg string) {
	fmt.Fprintf(os.Stderr, "fatal error: %s\n", msg)
	os.Exit(FatalExitCode)
}
