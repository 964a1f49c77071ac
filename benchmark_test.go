// FILE: benchmark_test.go
package funnel

import (
	"io"
	"testing"
	"time"
)

// nopSink discards entries
type nopSink struct{}

func (nopSink) Log(time.Time, Level, string, Fields) {}
func (nopSink) Flush()                               {}

// BenchmarkLoggerInfo benchmarks dispatch to a single discarding sink
func BenchmarkLoggerInfo(b *testing.B) {
	logger := NewLogger(WithSinks(nopSink{}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message")
	}
}

// BenchmarkLoggerFanOut benchmarks dispatch to several sinks
func BenchmarkLoggerFanOut(b *testing.B) {
	logger := NewLogger(WithSinks(nopSink{}, nopSink{}, nopSink{}, nopSink{}, nopSink{}, nopSink{}, nopSink{}, nopSink{}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message")
	}
}

// BenchmarkConsoleSink benchmarks line rendering with structured data
func BenchmarkConsoleSink(b *testing.B) {
	logger := NewLogger(WithSinks(NewConsoleSink(io.Discard)))

	fields := Fields{
		"user_id": 123,
		"action":  "benchmark",
		"value":   42.5,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark", fields)
	}
}

// BenchmarkConcurrentLogging benchmarks the logger's performance under concurrent load
func BenchmarkConcurrentLogging(b *testing.B) {
	logger := NewLogger(WithSinks(NewConsoleSink(io.Discard)))

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent", Fields{"i": i})
			i++
		}
	})
}
