// FILE: config.go
package funnel

import (
	"strings"

	lconfig "github.com/lixenwraith/config"

	"github.com/lixenwraith/funnel/formatter"
)

// Config holds the settings used by Builder to assemble the reference sinks
type Config struct {
	// Console output
	EnableConsole    bool    `toml:"enable_console"`
	ConsoleTarget    string  `toml:"console_target"`     // "stdout" or "stderr"
	ConsoleLevel     string  `toml:"console_level"`      // Minimum level name written to the console
	TimestampFormat  string  `toml:"timestamp_format"`   // Go time layout
	ShowThread       bool    `toml:"show_thread"`        // Render the OS thread id
	ConsoleColor     string  `toml:"console_color"`      // "auto", "always" or "never"
	ConsoleRateLimit float64 `toml:"console_rate_limit"` // Entries per second below error level, 0 = unlimited
	ConsoleBurst     int64   `toml:"console_burst"`      // Token bucket size when rate limited

	// System log
	EnableSystem bool   `toml:"enable_system"`
	SystemTag    string `toml:"system_tag"`

	// Metrics
	EnableMetrics    bool   `toml:"enable_metrics"`
	MetricsNamespace string `toml:"metrics_namespace"`

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal sink errors to stderr
}

// Console colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Console output
	EnableConsole:    true,
	ConsoleTarget:    TargetStdout,
	ConsoleLevel:     "debug",
	TimestampFormat:  formatter.DefaultTimestampFormat,
	ShowThread:       true,
	ConsoleColor:     ColorAuto,
	ConsoleRateLimit: 0,
	ConsoleBurst:     100,

	// System log
	EnableSystem: false,
	SystemTag:    DefaultSystemTag,

	// Metrics
	EnableMetrics:    false,
	MetricsNamespace: "funnel",

	// Internal error handling
	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

// ConfigFromEnv loads defaults overlaid by environment variables named
// prefix + upper-cased key, e.g. "APP_CONSOLE_LEVEL" for prefix "APP_".
// The result is validated.
func ConfigFromEnv(prefix string) (*Config, error) {
	loader, err := lconfig.NewBuilder().
		WithDefaults(DefaultConfig()).
		WithEnvPrefix(prefix).
		WithEnvTransform(func(path string) string {
			return prefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
		}).
		WithSources(
			lconfig.SourceEnv,
			lconfig.SourceDefault,
		).
		Build()
	if err != nil {
		return nil, fmtErrorf("failed to load config from environment: %w", err)
	}

	cfg := &Config{}
	if err := loader.Scan(cfg); err != nil {
		return nil, fmtErrorf("failed to scan config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems in one error
func (c *Config) Validate() error {
	var errors []error

	if c.ConsoleTarget != TargetStdout && c.ConsoleTarget != TargetStderr {
		errors = append(errors, fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget))
	}

	if _, err := ParseLevel(c.ConsoleLevel); err != nil {
		errors = append(errors, fmtErrorf("invalid console_level: %w", err))
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		errors = append(errors, fmtErrorf("timestamp_format cannot be empty"))
	}

	switch c.ConsoleColor {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errors = append(errors, fmtErrorf("invalid console_color: '%s' (use auto, always, or never)", c.ConsoleColor))
	}

	if c.ConsoleRateLimit < 0 {
		errors = append(errors, fmtErrorf("console_rate_limit cannot be negative: %g", c.ConsoleRateLimit))
	}

	// Cross-field validations
	if c.ConsoleRateLimit > 0 && c.ConsoleBurst < 1 {
		errors = append(errors, fmtErrorf("console_burst must be at least 1 when rate limited: %d", c.ConsoleBurst))
	}

	if c.EnableSystem && strings.TrimSpace(c.SystemTag) == "" {
		errors = append(errors, fmtErrorf("system_tag cannot be empty when system log is enabled"))
	}

	if c.EnableMetrics && strings.TrimSpace(c.MetricsNamespace) == "" {
		errors = append(errors, fmtErrorf("metrics_namespace cannot be empty when metrics are enabled"))
	}

	return combineConfigErrors(errors)
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
