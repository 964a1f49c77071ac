// FILE: throttle_sink_test.go
package funnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle(t *testing.T) {
	t.Run("drops beyond burst and reports", func(t *testing.T) {
		recorder := NewRecorder()
		throttle := NewThrottle(recorder, 1, 2)

		throttle.Log(timeZero, LevelInfo, "one", nil)
		throttle.Log(timeZero, LevelInfo, "two", nil)
		throttle.Log(timeZero, LevelInfo, "dropped", nil)
		throttle.Log(timeZero, LevelWarning, "dropped too", nil)
		assert.Equal(t, uint64(2), throttle.Dropped())

		// Errors always pass, preceded by the drop report
		throttle.Log(timeZero, LevelError, "urgent", nil)

		entries := recorder.Entries()
		require.Len(t, entries, 4)
		assert.Equal(t, "one", entries[0].Message)
		assert.Equal(t, "two", entries[1].Message)
		assert.Equal(t, LevelWarning, entries[2].Level)
		assert.Equal(t, droppedMessage, entries[2].Message)
		assert.Equal(t, uint64(2), entries[2].Data[droppedCountKey])
		assert.Equal(t, "urgent", entries[3].Message)
		assert.Zero(t, throttle.Dropped())
	})

	t.Run("flush reports pending drops first", func(t *testing.T) {
		recorder := NewRecorder()
		throttle := NewThrottle(recorder, 1, 1)

		throttle.Log(timeZero, LevelInfo, "kept", nil)
		throttle.Log(timeZero, LevelDebug, "dropped", nil)
		throttle.Flush()

		entries := recorder.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, droppedMessage, entries[1].Message)
		assert.Equal(t, uint64(1), entries[1].Data[droppedCountKey])
		assert.Equal(t, 1, recorder.Flushes())
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		recorder := NewRecorder()
		throttle := NewThrottle(recorder, 10, 1)

		throttle.Log(timeZero, LevelInfo, "first", nil)
		throttle.Log(timeZero, LevelInfo, "dropped", nil)
		throttle.Log(timeZero.Add(200*time.Millisecond), LevelInfo, "later", nil)

		entries := recorder.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "first", entries[0].Message)
		assert.Equal(t, droppedMessage, entries[1].Message)
		assert.Equal(t, "later", entries[2].Message)
	})

	t.Run("non-positive rate is unlimited", func(t *testing.T) {
		recorder := NewRecorder()
		throttle := NewThrottle(recorder, 0, 0)

		for i := 0; i < 100; i++ {
			throttle.Log(timeZero, LevelDebug, "free", nil)
		}
		assert.Equal(t, 100, recorder.Len())
		assert.Zero(t, throttle.Dropped())
	})
}
