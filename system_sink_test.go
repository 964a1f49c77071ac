//go:build !windows && !plan9

package funnel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeSyslog records messages per severity
type fakeSyslog struct {
	calls []string
	err   error
}

func (f *fakeSyslog) Debug(m string) error { return f.record("debug", m) }
func (f *fakeSyslog) Info(m string) error  { return f.record("info", m) }
func (f *fakeSyslog) Err(m string) error   { return f.record("err", m) }
func (f *fakeSyslog) Close() error         { return nil }

func (f *fakeSyslog) record(severity, m string) error {
	f.calls = append(f.calls, severity+": "+m)
	return f.err
}

func TestSystemSinkSeverity(t *testing.T) {
	fake := &fakeSyslog{}
	sink := &SystemSink{w: fake}

	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal} {
		sink.Log(time.Now(), level, level.String(), nil)
	}

	assert.Equal(t, []string{
		"debug: DEBUG",
		"info: INFO",
		"err: WARNING",
		"err: ERROR",
		"err: FATAL",
	}, fake.calls)
}

func TestSystemSinkData(t *testing.T) {
	fake := &fakeSyslog{}
	sink := &SystemSink{w: fake}

	sink.Log(time.Now(), LevelInfo, "started", Fields{"port": 8080})

	assert.Equal(t, []string{"info: started {port=8080}"}, fake.calls)
}

func TestSystemSinkErrors(t *testing.T) {
	diag := captureDiagnostics(t, true)
	fake := &fakeSyslog{err: errors.New("socket closed")}
	sink := &SystemSink{w: fake}

	sink.Log(time.Now(), LevelError, "lost", nil)
	sink.Log(time.Now(), LevelError, "lost again", nil)
	sink.Flush()

	assert.Equal(t, uint64(2), sink.Errors())
	assert.Contains(t, diag.String(), "funnel: system sink write failed: socket closed")
	assert.NoError(t, sink.Close())
}
