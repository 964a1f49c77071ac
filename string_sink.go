// FILE: string_sink.go
package funnel

import (
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/funnel/formatter"
)

// StringSink accumulates lines in memory in the console layout.
// Mostly useful for tests and for capturing output of short tasks.
type StringSink struct {
	mu     sync.Mutex
	buf    strings.Builder
	format *formatter.Formatter
}

// NewStringSink creates an empty string sink.
func NewStringSink() *StringSink {
	return &StringSink{
		format: formatter.New(),
	}
}

// SetTimestampFormat sets the time layout of subsequent lines
func (s *StringSink) SetTimestampFormat(layout string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format.TimestampFormat(layout)
}

// String returns everything logged since creation or the last Truncate
func (s *StringSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Truncate discards the accumulated text
func (s *StringSink) Truncate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
}

// Log implements Sink.
func (s *StringSink) Log(timestamp time.Time, level Level, message string, data Fields) {
	tid := threadID()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Write(s.format.Line(timestamp, tid, level.String(), message, data))
	s.buf.WriteByte('\n')
}

// Flush is a no-op; lines are visible as soon as Log returns.
func (s *StringSink) Flush() {}
