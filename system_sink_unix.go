//go:build !windows && !plan9

package funnel

import (
	"log/syslog"
	"sync/atomic"
	"time"
)

// syslogWriter is the subset of *syslog.Writer used by SystemSink
type syslogWriter interface {
	Debug(m string) error
	Info(m string) error
	Err(m string) error
	Close() error
}

// SystemSink forwards entries to the local syslog daemon.
// Warning, error and fatal entries all use the err severity.
type SystemSink struct {
	w      syslogWriter
	errors atomic.Uint64
}

// NewSystemSink connects to the local syslog daemon with the given tag.
func NewSystemSink(tag string) (*SystemSink, error) {
	if tag == "" {
		tag = DefaultSystemTag
	}
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, fmtErrorf("failed to connect to system log: %w", err)
	}
	return &SystemSink{w: w}, nil
}

// Log implements Sink. The timestamp is left to syslog.
func (s *SystemSink) Log(_ time.Time, level Level, message string, data Fields) {
	text := messageWithData(message, data)

	var err error
	switch {
	case level < LevelInfo:
		err = s.w.Debug(text)
	case level < LevelWarning:
		err = s.w.Info(text)
	default:
		err = s.w.Err(text)
	}

	if err != nil {
		s.errors.Add(1)
		internalLog("system sink write failed: %v", err)
	}
}

// Flush is a no-op; syslog writes are not buffered.
func (s *SystemSink) Flush() {}

// Errors returns the number of failed writes
func (s *SystemSink) Errors() uint64 {
	return s.errors.Load()
}

// Close releases the syslog connection
func (s *SystemSink) Close() error {
	return s.w.Close()
}
