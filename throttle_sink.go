// FILE: throttle_sink.go
package funnel

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Throttle rate-limits entries below error level on their way to next.
// Dropped entries are counted and reported as a single warning ahead of the
// next entry that passes.
type Throttle struct {
	next    Sink
	limiter *rate.Limiter
	dropped atomic.Uint64
}

// NewThrottle wraps next with a token bucket of perSecond entries and the
// given burst. A non-positive perSecond disables limiting.
func NewThrottle(next Sink, perSecond float64, burst int) *Throttle {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Throttle{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Log implements Sink.
func (t *Throttle) Log(timestamp time.Time, level Level, message string, data Fields) {
	if level < LevelError && !t.limiter.AllowN(timestamp, 1) {
		t.dropped.Add(1)
		return
	}
	t.reportDrops(timestamp)
	t.next.Log(timestamp, level, message, data)
}

// Flush reports pending drops, then flushes next.
func (t *Throttle) Flush() {
	t.reportDrops(time.Now())
	t.next.Flush()
}

// Dropped returns the number of drops not yet reported
func (t *Throttle) Dropped() uint64 {
	return t.dropped.Load()
}

// reportDrops emits the drop report, resetting the counter
func (t *Throttle) reportDrops(timestamp time.Time) {
	if n := t.dropped.Swap(0); n > 0 {
		t.next.Log(timestamp, LevelWarning, droppedMessage, Fields{droppedCountKey: n})
	}
}
