package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

func TestFormatter(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 5_000_000, time.UTC)

	t.Run("default layout", func(t *testing.T) {
		f := New()

		line := f.Line(timestamp, 42, "INFO", "test message", nil)
		assert.Equal(t, "2024-01-01 12:00:00.005 [42] INFO test message", string(line))
	})

	t.Run("fluent API", func(t *testing.T) {
		f := New().
			TimestampFormat(time.RFC3339).
			ShowThread(false)

		line := f.Line(timestamp, 42, "WARNING", "careful", nil)
		assert.Equal(t, "2024-01-01T12:00:00Z WARNING careful", string(line))
		assert.Equal(t, time.RFC3339, f.GetTimestampFormat())
	})

	t.Run("empty timestamp format keeps current", func(t *testing.T) {
		f := New().TimestampFormat("")
		assert.Equal(t, DefaultTimestampFormat, f.GetTimestampFormat())
	})

	t.Run("literal timestamp format", func(t *testing.T) {
		f := New().TimestampFormat("[custom]")

		line := f.Line(timestamp, 7, "INFO", "test", nil)
		assert.Equal(t, "[custom] [7] INFO test", string(line))
	})

	t.Run("data appended", func(t *testing.T) {
		f := New().ShowThread(false)

		line := f.Line(timestamp, 0, "ERROR", "failed", map[string]any{"code": 500, "user": "bob"})
		assert.True(t, strings.HasSuffix(string(line), "ERROR failed {code=500 user=bob}"))
	})

	t.Run("color wraps level only", func(t *testing.T) {
		f := New().ShowThread(false).Color(true)

		line := string(f.Line(timestamp, 0, "ERROR", "boom", nil))
		assert.Contains(t, line, colorRed+"ERROR"+colorReset)
		assert.True(t, strings.HasSuffix(line, " boom"))
	})

	t.Run("sanitize keeps one entry on one line", func(t *testing.T) {
		f := New().ShowThread(false)

		line := string(f.Line(timestamp, 0, "INFO", "first\nsecond", nil))
		assert.NotContains(t, line, "\n")
		assert.Contains(t, line, "first<0a>second")
	})

	t.Run("sanitize disabled", func(t *testing.T) {
		f := New().ShowThread(false).Sanitize(false)

		line := string(f.Line(timestamp, 0, "INFO", "first\nsecond", nil))
		assert.Contains(t, line, "first\nsecond")
	})

	t.Run("buffer reuse", func(t *testing.T) {
		f := New().ShowThread(false)

		first := string(f.Line(timestamp, 0, "INFO", "one", nil))
		second := string(f.Line(timestamp, 0, "INFO", "two", nil))
		assert.True(t, strings.HasSuffix(first, "one"))
		assert.True(t, strings.HasSuffix(second, "two"))
	})
}

func TestFormatData(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected string
	}{
		{"nil", nil, ""},
		{"empty", map[string]any{}, ""},
		{"string", map[string]any{"key": "value"}, "{key=value}"},
		{"sorted keys", map[string]any{"b": 2, "a": 1, "c": 3}, "{a=1 b=2 c=3}"},
		{"quoted string", map[string]any{"msg": "hello world"}, `{msg="hello world"}`},
		{"escaped quote", map[string]any{"q": `say "hi"`}, `{q="say \"hi\""}`},
		{"empty string", map[string]any{"e": ""}, `{e=""}`},
		{"numbers", map[string]any{"i": int64(-3), "u": uint(7), "f": 1.5}, "{f=1.5 i=-3 u=7}"},
		{"bool and nil", map[string]any{"ok": true, "none": nil}, "{none=nil ok=true}"},
		{"error", map[string]any{"err": errors.New("disk full")}, `{err="disk full"}`},
		{"duration", map[string]any{"took": 1500 * time.Millisecond}, "{took=1.5s}"},
		{"bytes", map[string]any{"raw": []byte{0xde, 0xad}}, "{raw=dead}"},
		{"time", map[string]any{"at": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, "{at=2024-01-01T00:00:00Z}"},
		{"control char", map[string]any{"s": "a\tb"}, `{s="a<09>b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatData(tt.data))
		})
	}
}

func TestFormatDataComplex(t *testing.T) {
	out := FormatData(map[string]any{"p": point{X: 1, Y: 2}})

	assert.True(t, strings.HasPrefix(out, "{p="))
	assert.Contains(t, out, "X:1")
	assert.Contains(t, out, "Y:2")
	assert.NotContains(t, out, "\n")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, colorGray, levelColor("DEBUG"))
	assert.Equal(t, colorBlue, levelColor("INFO"))
	assert.Equal(t, colorYellow, levelColor("WARNING"))
	assert.Equal(t, colorRed, levelColor("ERROR"))
	assert.Equal(t, colorRed+colorBold, levelColor("FATAL"))
	assert.Equal(t, colorGray, levelColor("LEVEL(99)"))
}
