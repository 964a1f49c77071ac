package compat

import (
	"fmt"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/funnel"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet's internal logging into a funnel Logger.
// It implements gnet's logging.Logger interface.
type GnetAdapter struct {
	logger        *funnel.Logger
	extractFields bool
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *funnel.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFieldExtraction turns "key=%v" pairs in gnet's format strings into
// entry data instead of message text.
func WithFieldExtraction(enable bool) GnetOption {
	return func(a *GnetAdapter) {
		a.extractFields = enable
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.log(funnel.LevelDebug, format, args)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.log(funnel.LevelInfo, format, args)
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.log(funnel.LevelWarning, format, args)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.log(funnel.LevelError, format, args)
}

// Fatalf escalates through the funnel's fatal path: all sinks are flushed and
// the logger's fatal handler terminates the process.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg, fields := a.render(format, args)
	a.logger.Fatal(msg, withSource(fields, "gnet"))
}

// log renders and dispatches one gnet message
func (a *GnetAdapter) log(level funnel.Level, format string, args []any) {
	msg, fields := a.render(format, args)
	a.logger.Log(level, msg, withSource(fields, "gnet"))
}

// render formats the message, extracting fields when enabled
func (a *GnetAdapter) render(format string, args []any) (string, funnel.Fields) {
	if a.extractFields {
		return parseFormat(format, args)
	}
	return fmt.Sprintf(format, args...), nil
}
