// FILE: example/raw/main.go
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/funnel"
)

// TestPayload defines a struct for testing complex type rendering.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Funnel Data Rendering Test ---")

	sink := funnel.NewStringSink()
	sink.SetTimestampFormat(time.RFC3339)
	logger := funnel.NewLogger(funnel.WithSinks(sink))

	// A byte slice with special characters (newline, tab, null) renders as hex
	logger.Info("bytes", funnel.Fields{"payload": []byte("binary\ndata\twith\x00null")})

	// Control characters in strings are escaped, keeping one entry per line
	logger.Info("multi\nline message", funnel.Fields{"note": "tab\there"})

	// Structs and maps go through spew with sorted keys
	logger.Info("struct", funnel.Fields{"record": TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms": 15.7,
			"cpu_load":   0.85,
		},
	}})

	// Errors, durations and times use their own renderings
	logger.Error("mixed", funnel.Fields{
		"err":     errors.New("connection refused"),
		"elapsed": 1500 * time.Millisecond,
		"at":      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	// Several data maps merge, later keys winning
	logger.Warning("merged", funnel.Fields{"a": 1, "b": 1}, funnel.Fields{"b": 2})

	fmt.Print(sink.String())
	fmt.Println("--- Test Complete ---")
}
