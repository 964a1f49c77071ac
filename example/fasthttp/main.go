// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/funnel"
	"github.com/lixenwraith/funnel/compat"
)

func main() {
	// Create and configure logger
	registry := prometheus.NewRegistry()
	logger, err := funnel.NewBuilder().
		Override(
			"console_level=info",
			"console_rate_limit=200",
			"console_burst=50",
		).
		EnableMetrics("fasthttp_example").
		Registerer(registry).
		Build()
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(funnel.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			requestHandler(logger, ctx)
		},
		Logger: fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	logger.Info("Starting server", funnel.Fields{"addr": ":8080"})
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Fatal("server failed", funnel.Fields{"error": err})
	}
}

func requestHandler(logger *funnel.Logger, ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	logger.Debug("request served", funnel.Fields{"path": string(ctx.Path()), "remote": ctx.RemoteAddr()})
}

func customLevelDetector(msg string) (funnel.Level, bool) {
	// Can inspect specific fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return funnel.LevelWarning, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return funnel.LevelError, true
	}

	// Use default detection
	return compat.DetectLevel(msg)
}
