// FILE: record.go
package funnel

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/funnel/formatter"
)

// Fields carries structured data attached to an entry. Nil means empty.
type Fields map[string]any

// Entry is one dispatched log call as seen by a sink.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Data      Fields
}

// String renders the entry in the console line layout without thread id
func (e Entry) String() string {
	return string(formatter.New().ShowThread(false).Line(e.Timestamp, 0, e.Level.String(), e.Message, e.Data))
}

// mergeFields collapses variadic data: none gives nil, one is used as is,
// several are merged into a new map with later keys winning.
func mergeFields(data []Fields) Fields {
	switch len(data) {
	case 0:
		return nil
	case 1:
		return data[0]
	}

	size := 0
	for _, d := range data {
		size += len(d)
	}
	if size == 0 {
		return nil
	}

	merged := make(Fields, size)
	for _, d := range data {
		maps.Copy(merged, d)
	}
	return merged
}

// messageWithData renders the message followed by the data, if there is any.
func messageWithData(message string, data Fields) string {
	if len(data) == 0 {
		return message
	}
	return message + " " + formatter.FormatData(data)
}

// diagnostics gates the library's own error reporting
var diagnostics = struct {
	mu      sync.Mutex
	enabled bool
	out     io.Writer
}{
	out: os.Stderr,
}

// SetInternalErrors enables or disables writing internal sink errors to stderr.
func SetInternalErrors(enabled bool) {
	diagnostics.mu.Lock()
	diagnostics.enabled = enabled
	diagnostics.mu.Unlock()
}

// internalLog handles writing internal diagnostics to stderr, if enabled.
func internalLog(format string, args ...any) {
	diagnostics.mu.Lock()
	defer diagnostics.mu.Unlock()

	if !diagnostics.enabled {
		return
	}

	// Ensure consistent prefix
	if !strings.HasPrefix(format, errorPrefix) {
		format = errorPrefix + format
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}

	fmt.Fprintf(diagnostics.out, format, args...)
}
