package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/funnel"
)

var levels = []funnel.Level{
	funnel.LevelDebug,
	funnel.LevelInfo,
	funnel.LevelWarning,
	funnel.LevelError,
}

var (
	numWorkers     int
	totalBursts    int
	logsPerBurst   int
	maxMessageSize int
	churn          bool
	ratePerSecond  float64
)

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.IntN(len(chars))])
	}
	return sb.String()
}

// logBurst simulates a burst of logging activity
func logBurst(logger *funnel.Logger, burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.IntN(len(levels))]
		msg := generateRandomMessage(rand.IntN(maxMessageSize) + 10)
		logger.Log(level, msg, funnel.Fields{
			"wkr": burstID % numWorkers,
			"bst": burstID,
			"seq": i,
			"rnd": rand.Int64(),
		})
	}
}

// churnSinks adds and removes a recorder until ctx is done, exercising the
// write side of the registry while workers hold the read side
func churnSinks(ctx context.Context, logger *funnel.Logger, cycles *atomic.Int64) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		recorder := funnel.NewRecorder()
		logger.Add(recorder)
		time.Sleep(time.Millisecond)
		logger.Remove(recorder)
		cycles.Add(1)
	}
}

// validateFlags rejects non-positive sizes and a negative rate
func validateFlags() error {
	for _, check := range []struct {
		name  string
		value int
	}{
		{"workers", numWorkers},
		{"bursts", totalBursts},
		{"per-burst", logsPerBurst},
		{"max-size", maxMessageSize},
	} {
		if check.value <= 0 {
			return fmt.Errorf("--%s must be greater than zero, got %d", check.name, check.value)
		}
	}
	if ratePerSecond < 0 {
		return fmt.Errorf("--rate must not be negative, got %v", ratePerSecond)
	}
	return nil
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.IntVarP(&numWorkers, "workers", "w", 64, "Concurrent logging goroutines")
	fs.IntVarP(&totalBursts, "bursts", "b", 200, "Total bursts to dispatch")
	fs.IntVar(&logsPerBurst, "per-burst", 500, "Entries per burst")
	fs.IntVar(&maxMessageSize, "max-size", 1000, "Maximum random message length")
	fs.BoolVar(&churn, "churn", true, "Add and remove sinks while logging")
	fs.Float64Var(&ratePerSecond, "rate", 0,
		`Throttle the buffered sink to this many entries per second below
error level (0 = unlimited).`)
	_ = fs.Parse(os.Args[1:])

	if err := validateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("--- Funnel Stress Test ---")

	// --- Initialize Logger ---
	registry := prometheus.NewRegistry()
	metrics, err := funnel.NewMetricsSink("stress", registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create metrics sink: %v\n", err)
		os.Exit(1)
	}
	buffer := funnel.NewStringSink()
	throttle := funnel.NewThrottle(buffer, ratePerSecond, 1000)

	logger := funnel.NewLogger(funnel.WithSinks(metrics, throttle))

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	burstChan := make(chan int, numWorkers)
	var completedBursts, churnCycles atomic.Int64

	workers, workCtx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		workers.Go(func() error {
			for burstID := range burstChan {
				logBurst(logger, burstID)
				completed := completedBursts.Add(1)
				if completed%10 == 0 || completed == int64(totalBursts) {
					fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
				}
				// Keep memory bounded
				buffer.Truncate()
			}
			return nil
		})
	}

	churnCtx, stopChurn := context.WithCancel(workCtx)
	var churner errgroup.Group
	if churn {
		churner.Go(func() error {
			return churnSinks(churnCtx, logger, &churnCycles)
		})
	}

	// --- Run Test ---
	startTime := time.Now()
submit:
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-workCtx.Done():
			fmt.Println("\n[Signal Received] Halting burst submission.")
			break submit
		}
	}
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	_ = workers.Wait()
	stopChurn()
	_ = churner.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		logsPerSec := float64(finalCompleted*int64(logsPerBurst)) / duration.Seconds()
		fmt.Printf("Approximate Logs/sec: %.2f\n", logsPerSec)
	}
	if churn {
		fmt.Printf("Sink add/remove cycles: %d\n", churnCycles.Load())
	}
	fmt.Printf("Entries awaiting drop report: %d\n", throttle.Dropped())

	// --- Report Metrics ---
	families, err := registry.Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to gather metrics: %v\n", err)
		os.Exit(1)
	}
	for _, family := range families {
		if family.GetName() != "stress_log_entries_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				fmt.Printf("  %-8s %.0f\n", label.GetValue(), m.GetCounter().GetValue())
			}
		}
	}
}
