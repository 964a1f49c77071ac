package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/lixenwraith/funnel"
)

const envPrefix = "FUNNEL_"

func main() {
	var (
		helpFlag  bool
		fatalFlag bool
		overrides []string
	)

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVar(&fatalFlag, "fatal", false,
		`Finish with a fatal entry: every sink is flushed and the process
exits with status 2.`)
	fs.StringArrayVarP(&overrides, "set", "s", nil,
		`Configuration override as key=value, e.g. console_level=warning.
Applied after `+envPrefix+`* environment variables. Repeatable.`)

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if helpFlag {
		fmt.Println("Usage: simple [options]")
		fs.PrintDefaults()
		return
	}

	fmt.Println("--- Simple Funnel Example ---")

	// --- Setup Config ---
	cfg, err := funnel.ConfigFromEnv(envPrefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Logger ---
	captured := funnel.NewStringSink()
	logger, err := funnel.NewBuilder().
		Config(cfg).
		Override(overrides...).
		Sink(captured).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	funnel.SetShared(logger)
	fmt.Printf("Logger initialized with %d sinks.\n", logger.Len())

	// --- Logging ---
	funnel.Debug("Debug entry", funnel.Fields{"user_id": 123})
	funnel.Info("Application starting", funnel.Fields{"pid": os.Getpid()})
	funnel.Warning("Potential issue detected", funnel.Fields{"threshold": 0.95})
	funnel.Error("Error occurred", funnel.Fields{"code": 500, "path": "/api/v1/items"})

	// --- Concurrent Logging ---
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 3; j++ {
				funnel.Info("Goroutine message", funnel.Fields{"goroutine": id, "iteration": j})
				time.Sleep(5 * time.Millisecond)
			}
		}(i)
	}
	wg.Wait()

	fmt.Printf("Captured %d bytes in the string sink.\n", len(captured.String()))

	if fatalFlag {
		funnel.Fatal("Unrecoverable state", funnel.Fields{"reason": "requested by --fatal"})
	}

	fmt.Println("--- Example Finished ---")
}
