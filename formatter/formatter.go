// Package formatter renders funnel entries into single text lines.
package formatter

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// DefaultTimestampFormat mirrors a conventional "date time.millis" console layout.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// ANSI colour codes used when colour output is enabled
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
)

// spewConfig renders values that have no direct conversion.
// Compact, deterministic and free of pointer noise.
var spewConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Formatter manages the buffered rendering of log lines.
// A Formatter is not safe for concurrent use; sinks guard their own instance.
type Formatter struct {
	timestampFormat string
	showThread      bool
	color           bool
	sanitize        bool
	buf             []byte
}

// New creates a formatter with the default layout:
// "<timestamp> [<thread>] <LEVEL> <message>[ <data>]"
func New() *Formatter {
	return &Formatter{
		timestampFormat: DefaultTimestampFormat,
		showThread:      true,
		sanitize:        true,
		buf:             make([]byte, 0, 256),
	}
}

// TimestampFormat sets the time layout, empty keeps the current one
func (f *Formatter) TimestampFormat(layout string) *Formatter {
	if layout != "" {
		f.timestampFormat = layout
	}
	return f
}

// ShowThread sets whether the bracketed thread id is rendered
func (f *Formatter) ShowThread(show bool) *Formatter {
	f.showThread = show
	return f
}

// Color enables ANSI colouring of the level name
func (f *Formatter) Color(enable bool) *Formatter {
	f.color = enable
	return f
}

// Sanitize enables hex-encoding of non-printable runes in messages and data
func (f *Formatter) Sanitize(enable bool) *Formatter {
	f.sanitize = enable
	return f
}

// GetTimestampFormat returns the active time layout
func (f *Formatter) GetTimestampFormat() string {
	return f.timestampFormat
}

// Line renders one entry without a trailing newline.
// The returned slice is reused by the next call.
func (f *Formatter) Line(timestamp time.Time, thread int, level string, message string, data map[string]any) []byte {
	f.buf = f.buf[:0]

	f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)

	if f.showThread {
		f.buf = append(f.buf, " ["...)
		f.buf = strconv.AppendInt(f.buf, int64(thread), 10)
		f.buf = append(f.buf, ']')
	}

	f.buf = append(f.buf, ' ')
	if f.color {
		f.buf = append(f.buf, levelColor(level)...)
		f.buf = append(f.buf, level...)
		f.buf = append(f.buf, colorReset...)
	} else {
		f.buf = append(f.buf, level...)
	}

	f.buf = append(f.buf, ' ')
	f.buf = f.appendText(f.buf, message)

	if len(data) > 0 {
		f.buf = append(f.buf, ' ')
		f.buf = f.appendData(f.buf, data)
	}

	return f.buf
}

// FormatData renders data as "{k1=v1 k2=v2}" with keys sorted.
// Empty or nil data renders as an empty string.
func FormatData(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}
	f := New()
	return string(f.appendData(nil, data))
}

// appendData writes sorted key=value pairs inside braces
func (f *Formatter) appendData(buf []byte, data map[string]any) []byte {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	buf = append(buf, '{')
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = f.appendString(buf, k)
		buf = append(buf, '=')
		buf = f.appendValue(buf, data[k])
	}
	return append(buf, '}')
}

// appendValue provides unified type conversion for data values
func (f *Formatter) appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return f.appendString(buf, val)
	case []byte:
		return hex.AppendEncode(buf, val)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int8:
		return strconv.AppendInt(buf, int64(val), 10)
	case int16:
		return strconv.AppendInt(buf, int64(val), 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint8:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, time.RFC3339Nano)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return f.appendString(buf, val.Error())
	case fmt.Stringer:
		return f.appendString(buf, val.String())
	default:
		// Structs, maps, slices and pointers go through spew
		return f.appendText(buf, spewConfig.Sprintf("%+v", val))
	}
}

// appendString writes s, quoted when it would otherwise break key=value parsing
func (f *Formatter) appendString(buf []byte, s string) []byte {
	if !needsQuotes(s) {
		return f.appendText(buf, s)
	}
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			buf = append(buf, '\\')
			buf = utf8.AppendRune(buf, r)
		default:
			buf = f.appendRune(buf, r)
		}
	}
	return append(buf, '"')
}

// appendText writes s unquoted, escaping non-printable runes when enabled
func (f *Formatter) appendText(buf []byte, s string) []byte {
	if !f.sanitize {
		return append(buf, s...)
	}
	for _, r := range s {
		buf = f.appendRune(buf, r)
	}
	return buf
}

// appendRune hex-encodes non-printable runes as "<xx>" when sanitizing
func (f *Formatter) appendRune(buf []byte, r rune) []byte {
	if f.sanitize && !strconv.IsPrint(r) {
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		buf = hex.AppendEncode(buf, runeBytes[:n])
		return append(buf, '>')
	}
	return utf8.AppendRune(buf, r)
}

// needsQuotes reports whether a data string needs quoting
func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
		switch r {
		case '"', '\\', '=', '{', '}':
			return true
		}
	}
	return false
}

// levelColor maps level names to ANSI colours
func levelColor(level string) string {
	switch level {
	case "DEBUG":
		return colorGray
	case "INFO":
		return colorBlue
	case "WARNING":
		return colorYellow
	case "ERROR":
		return colorRed
	case "FATAL":
		return colorRed + colorBold
	default:
		return colorGray
	}
}
