//go:build windows || plan9

package funnel

import (
	"time"
)

// SystemSink is unavailable on this platform.
type SystemSink struct{}

// NewSystemSink always fails with ErrSystemLogUnsupported.
func NewSystemSink(string) (*SystemSink, error) {
	return nil, ErrSystemLogUnsupported
}

// Log implements Sink.
func (s *SystemSink) Log(time.Time, Level, string, Fields) {}

// Flush implements Sink.
func (s *SystemSink) Flush() {}

// Errors returns the number of failed writes
func (s *SystemSink) Errors() uint64 { return 0 }

// Close is a no-op
func (s *SystemSink) Close() error { return nil }
