// FILE: recorder.go
package funnel

import (
	"slices"
	"sync"
	"time"
)

// Recorder keeps every entry it receives in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	flushes int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log implements Sink.
func (r *Recorder) Log(timestamp time.Time, level Level, message string, data Fields) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Timestamp: timestamp,
		Level:     level,
		Message:   message,
		Data:      data,
	})
}

// Flush implements Sink.
func (r *Recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
}

// Entries returns a copy of the recorded entries in arrival order
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Len returns the number of recorded entries
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Flushes returns how many times Flush was called
func (r *Recorder) Flushes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}

// Reset discards recorded entries and the flush count
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.flushes = 0
}
