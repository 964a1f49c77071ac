package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/funnel"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter routes fasthttp's server logging into a funnel Logger.
// It implements fasthttp's Logger interface.
type FastHTTPAdapter struct {
	logger        *funnel.Logger
	defaultLevel  funnel.Level
	levelDetector func(string) (funnel.Level, bool) // Detects level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *funnel.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  funnel.LevelInfo,
		levelDetector: DetectLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when no level is detected.
// Fatal is downgraded to error; fasthttp messages never terminate the process.
func WithDefaultLevel(level funnel.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = min(level, funnel.LevelError)
	}
}

// WithLevelDetector sets a custom function to detect the level from message
// content. A nil detector always uses the default level.
func WithLevelDetector(detector func(string) (funnel.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = min(detected, funnel.LevelError)
		}
	}

	a.logger.Log(level, msg, funnel.Fields{"source": "fasthttp"})
}

// DetectLevel guesses a level from keywords in msg. Fatal and panic messages
// map to error. It reports false when no keyword matched.
func DetectLevel(msg string) (funnel.Level, bool) {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return funnel.LevelError, true
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return funnel.LevelWarning, true
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return funnel.LevelDebug, true
	}

	return funnel.LevelInfo, false
}
