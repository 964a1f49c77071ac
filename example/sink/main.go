// FILE: example/sink/main.go
package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/funnel"
)

// countingSink is a minimal custom sink counting entries per level
type countingSink struct {
	errors  atomic.Int64
	others  atomic.Int64
	flushed atomic.Bool
}

func (s *countingSink) Log(_ time.Time, level funnel.Level, _ string, _ funnel.Fields) {
	if level >= funnel.LevelError {
		s.errors.Add(1)
		return
	}
	s.others.Add(1)
}

func (s *countingSink) Flush() {
	s.flushed.Store(true)
}

// main runs each console configuration against a fresh logger
func main() {
	fmt.Println("--- Running Sink Scenarios ---")

	runTestPhase("1: Stdout only", "console_target=stdout")
	runTestPhase("2: Stderr only", "console_target=stderr")
	runTestPhase("3: Warnings and above", "console_level=warning")
	runTestPhase("4: No console", "enable_console=false")
	runTestPhase("5: Invalid target", "console_target=printer")

	// --- Custom sink next to the console ---
	fmt.Println("\n--- Custom sink ---")
	counter := &countingSink{}
	logger, err := funnel.NewBuilder().
		ConsoleWriter(os.Stdout).
		Sink(counter).
		Build()
	if err != nil {
		fmt.Printf("Build failed: %v\n", err)
		return
	}
	logger.Info("first")
	logger.Error("second")
	logger.Remove(counter)
	logger.Error("not counted")
	fmt.Printf("Counted %d errors and %d others\n", counter.errors.Load(), counter.others.Load())

	fmt.Println("\n--- Sink Scenarios Complete ---")
}

// runTestPhase builds a logger from overrides and writes one entry per level
func runTestPhase(phaseName string, overrides ...string) {
	fmt.Printf("\n--- Phase %s ---\n", phaseName)

	logger, err := funnel.NewBuilder().Override(overrides...).Build()
	if err != nil {
		fmt.Printf("Build failed: %v\n", err)
		return
	}

	logger.Debug("debug entry", funnel.Fields{"phase": phaseName})
	logger.Info("info entry", funnel.Fields{"phase": phaseName})
	logger.Warning("warning entry", funnel.Fields{"phase": phaseName})
	logger.Error("error entry", funnel.Fields{"phase": phaseName})
	fmt.Printf("Sinks registered: %d\n", logger.Len())
}
