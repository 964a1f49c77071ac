// FILE: console_sink.go
package funnel

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/funnel/formatter"
	"golang.org/x/term"
)

// ConsoleSink writes one line per entry to a writer, stdout by default:
//
//	2024-01-01 12:00:00.000 [4242] INFO message {key=value}
type ConsoleSink struct {
	mu     sync.Mutex
	w      io.Writer
	format *formatter.Formatter
}

// NewConsoleSink creates a console sink writing to w, or os.Stdout if w is nil.
// Level colouring is enabled when w is a terminal.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{
		w:      w,
		format: formatter.New().Color(isTerminal(w)),
	}
}

// SetTimestampFormat sets the time layout of subsequent lines
func (s *ConsoleSink) SetTimestampFormat(layout string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format.TimestampFormat(layout)
}

// SetColor overrides terminal detection for level colouring
func (s *ConsoleSink) SetColor(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format.Color(enable)
}

// SetShowThread sets whether the thread id is rendered
func (s *ConsoleSink) SetShowThread(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format.ShowThread(show)
}

// Log implements Sink.
func (s *ConsoleSink) Log(timestamp time.Time, level Level, message string, data Fields) {
	tid := threadID()

	s.mu.Lock()
	defer s.mu.Unlock()

	line := append(s.format.Line(timestamp, tid, level.String(), message, data), '\n')
	if _, err := s.w.Write(line); err != nil {
		internalLog("console sink write failed: %v", err)
	}
}

// Flush drains a buffered writer, if the writer is one.
func (s *ConsoleSink) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			internalLog("console sink flush failed: %v", err)
		}
	}
}

// isTerminal reports whether w is a file descriptor attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
