// FILE: example/reconfig/main.go
package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/funnel"
)

// Simulate rapid sink registration changes while logging
func main() {
	var count atomic.Int64

	logger := funnel.NewLogger()
	recorder := funnel.NewRecorder()
	logger.Add(recorder)

	// Log something constantly
	go func() {
		for i := 0; ; i++ {
			logger.Info("Test log", funnel.Fields{"i": i})
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Add and remove a second sink rapidly
	for i := 0; i < 10; i++ {
		extra := funnel.NewStringSink()
		logger.Add(extra)
		time.Sleep(10 * time.Millisecond)
		logger.Remove(extra)
		fmt.Printf("Cycle %d: extra sink captured %d bytes, %d sinks registered\n",
			i, len(extra.String()), logger.Len())
	}

	time.Sleep(100 * time.Millisecond)
	fmt.Printf("Total logs attempted: %d\n", count.Load())
	fmt.Printf("Entries seen by the permanent recorder: %d\n", recorder.Len())
}
