// FILE: filter_sink.go
package funnel

import (
	"time"
)

// LevelFilter forwards entries at or above a minimum level.
type LevelFilter struct {
	next Sink
	min  Level
}

// NewLevelFilter wraps next so it only sees entries with level >= min.
func NewLevelFilter(next Sink, min Level) *LevelFilter {
	return &LevelFilter{next: next, min: min}
}

// Log implements Sink.
func (f *LevelFilter) Log(timestamp time.Time, level Level, message string, data Fields) {
	if level < f.min {
		return
	}
	f.next.Log(timestamp, level, message, data)
}

// Flush implements Sink.
func (f *LevelFilter) Flush() {
	f.next.Flush()
}
