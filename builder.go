// FILE: builder.go
package funnel

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

// Builder provides a fluent API for assembling a Logger with the reference
// sinks described by a Config, plus any caller-supplied sinks.
type Builder struct {
	cfg           *Config
	err           error // Accumulate errors for deferred handling
	consoleWriter io.Writer
	registerer    prometheus.Registerer
	sinks         []Sink
	fatalHandler  func(msg string)
}

// NewBuilder creates a new builder with default configuration values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the configuration and creates the Logger.
// Sinks are registered in order: console, system log, metrics, then sinks
// added with Sink.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	SetInternalErrors(b.cfg.InternalErrorsToStderr)

	var sinks []Sink

	if b.cfg.EnableConsole {
		sinks = append(sinks, b.buildConsole())
	}

	var system *SystemSink
	if b.cfg.EnableSystem {
		s, err := NewSystemSink(b.cfg.SystemTag)
		if err != nil {
			return nil, err
		}
		system = s
		sinks = append(sinks, system)
	}

	if b.cfg.EnableMetrics {
		metrics, err := NewMetricsSink(b.cfg.MetricsNamespace, b.registerer)
		if err != nil {
			if system != nil {
				err = combineErrors(err, system.Close())
			}
			return nil, err
		}
		sinks = append(sinks, metrics)
	}

	sinks = append(sinks, b.sinks...)

	opts := []Option{WithSinks(sinks...)}
	if b.fatalHandler != nil {
		opts = append(opts, WithFatalHandler(b.fatalHandler))
	}
	return NewLogger(opts...), nil
}

// buildConsole creates the console sink wrapped by its throttle and level filter
func (b *Builder) buildConsole() Sink {
	w := b.consoleWriter
	if w == nil {
		w = os.Stdout
		if b.cfg.ConsoleTarget == TargetStderr {
			w = os.Stderr
		}
	}

	console := NewConsoleSink(w)
	console.SetTimestampFormat(b.cfg.TimestampFormat)
	console.SetShowThread(b.cfg.ShowThread)
	switch b.cfg.ConsoleColor {
	case ColorAlways:
		console.SetColor(true)
	case ColorNever:
		console.SetColor(false)
	}

	var sink Sink = console
	if b.cfg.ConsoleRateLimit > 0 {
		sink = NewThrottle(sink, b.cfg.ConsoleRateLimit, int(b.cfg.ConsoleBurst))
	}

	// Validated in Build
	if level, _ := ParseLevel(b.cfg.ConsoleLevel); level > LevelDebug {
		sink = NewLevelFilter(sink, level)
	}
	return sink
}

// Config replaces the builder's configuration with a copy of cfg.
func (b *Builder) Config(cfg *Config) *Builder {
	if cfg != nil {
		b.cfg = cfg.Clone()
	}
	return b
}

// Override applies "key=value" overrides to the configuration.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.cfg.ApplyOverride(overrides...); err != nil {
		b.err = err
	}
	return b
}

// EnableConsole sets whether the console sink is created.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget sets the console stream, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ConsoleWriter sends console output to w instead of the configured target.
func (b *Builder) ConsoleWriter(w io.Writer) *Builder {
	b.consoleWriter = w
	return b
}

// ConsoleLevel sets the minimum level written to the console.
func (b *Builder) ConsoleLevel(level Level) *Builder {
	b.cfg.ConsoleLevel = level.String()
	return b
}

// ConsoleLevelString sets the minimum console level from a level name.
func (b *Builder) ConsoleLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.ConsoleLevel = level
	return b
}

// TimestampFormat sets the console time layout.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// ShowThread sets whether console lines carry the thread id.
func (b *Builder) ShowThread(show bool) *Builder {
	b.cfg.ShowThread = show
	return b
}

// ConsoleColor sets the colour mode: "auto", "always" or "never".
func (b *Builder) ConsoleColor(mode string) *Builder {
	b.cfg.ConsoleColor = mode
	return b
}

// RateLimit throttles console entries below error level.
func (b *Builder) RateLimit(perSecond float64, burst int64) *Builder {
	b.cfg.ConsoleRateLimit = perSecond
	b.cfg.ConsoleBurst = burst
	return b
}

// EnableSystem adds a syslog sink with the given tag.
func (b *Builder) EnableSystem(tag string) *Builder {
	b.cfg.EnableSystem = true
	if tag != "" {
		b.cfg.SystemTag = tag
	}
	return b
}

// EnableMetrics adds a prometheus sink under the given namespace.
func (b *Builder) EnableMetrics(namespace string) *Builder {
	b.cfg.EnableMetrics = true
	if namespace != "" {
		b.cfg.MetricsNamespace = namespace
	}
	return b
}

// Registerer sets where the metrics sink registers its collectors.
func (b *Builder) Registerer(reg prometheus.Registerer) *Builder {
	b.registerer = reg
	return b
}

// Sink appends caller-supplied sinks after the configured ones.
func (b *Builder) Sink(sinks ...Sink) *Builder {
	b.sinks = append(b.sinks, sinks...)
	return b
}

// FatalHandler replaces the process-terminating step of fatal escalation.
func (b *Builder) FatalHandler(handler func(msg string)) *Builder {
	b.fatalHandler = handler
	return b
}

// InternalErrors sets whether sink errors are reported to stderr.
func (b *Builder) InternalErrors(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}
