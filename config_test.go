// FILE: config_test.go
package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.True(t, cfg.EnableConsole)
	assert.Equal(t, TargetStdout, cfg.ConsoleTarget)
	assert.Equal(t, "debug", cfg.ConsoleLevel)
	assert.Equal(t, "2006-01-02 15:04:05.000", cfg.TimestampFormat)
	assert.True(t, cfg.ShowThread)
	assert.Equal(t, ColorAuto, cfg.ConsoleColor)
	assert.Zero(t, cfg.ConsoleRateLimit)
	assert.False(t, cfg.EnableSystem)
	assert.False(t, cfg.EnableMetrics)
	assert.False(t, cfg.InternalErrorsToStderr)
	assert.NoError(t, cfg.Validate())

	// Each call returns an independent copy
	cfg.ConsoleTarget = TargetStderr
	assert.Equal(t, TargetStdout, DefaultConfig().ConsoleTarget)
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.ConsoleLevel = "error"

	cfg2 := cfg1.Clone()
	cfg1.ConsoleLevel = "info"

	// Verify clone unchanged
	assert.Equal(t, "error", cfg2.ConsoleLevel)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "invalid console target",
			modify:    func(c *Config) { c.ConsoleTarget = "invalid" },
			wantError: "invalid console_target",
		},
		{
			name:      "invalid console level",
			modify:    func(c *Config) { c.ConsoleLevel = "verbose" },
			wantError: "invalid console_level",
		},
		{
			name:      "empty timestamp format",
			modify:    func(c *Config) { c.TimestampFormat = " " },
			wantError: "timestamp_format cannot be empty",
		},
		{
			name:      "invalid colour mode",
			modify:    func(c *Config) { c.ConsoleColor = "rainbow" },
			wantError: "invalid console_color",
		},
		{
			name:      "negative rate",
			modify:    func(c *Config) { c.ConsoleRateLimit = -1 },
			wantError: "console_rate_limit cannot be negative",
		},
		{
			name: "rate without burst",
			modify: func(c *Config) {
				c.ConsoleRateLimit = 10
				c.ConsoleBurst = 0
			},
			wantError: "console_burst must be at least 1",
		},
		{
			name: "system without tag",
			modify: func(c *Config) {
				c.EnableSystem = true
				c.SystemTag = ""
			},
			wantError: "system_tag cannot be empty",
		},
		{
			name: "disabled system ignores tag",
			modify: func(c *Config) {
				c.SystemTag = ""
			},
			wantError: "",
		},
		{
			name: "metrics without namespace",
			modify: func(c *Config) {
				c.EnableMetrics = true
				c.MetricsNamespace = ""
			},
			wantError: "metrics_namespace cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestConfigValidateCombinesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleTarget = "printer"
	cfg.ConsoleColor = "rainbow"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "funnel: multiple configuration errors:")
	assert.Contains(t, err.Error(), "1. invalid console_target")
	assert.Contains(t, err.Error(), "2. invalid console_color")
}

func TestApplyOverride(t *testing.T) {
	t.Run("valid overrides", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride(
			"enable_console=false",
			"console_target=stderr",
			"console_level=warning",
			"timestamp_format=15:04:05",
			"show_thread=false",
			"console_color=NEVER",
			"console_rate_limit=12.5",
			"console_burst=20",
			"enable_system=true",
			"system_tag=myapp",
			"enable_metrics=true",
			"metrics_namespace=myapp",
			"internal_errors_to_stderr=true",
		)
		require.NoError(t, err)

		assert.False(t, cfg.EnableConsole)
		assert.Equal(t, TargetStderr, cfg.ConsoleTarget)
		assert.Equal(t, "warning", cfg.ConsoleLevel)
		assert.Equal(t, "15:04:05", cfg.TimestampFormat)
		assert.False(t, cfg.ShowThread)
		assert.Equal(t, ColorNever, cfg.ConsoleColor)
		assert.Equal(t, 12.5, cfg.ConsoleRateLimit)
		assert.Equal(t, int64(20), cfg.ConsoleBurst)
		assert.True(t, cfg.EnableSystem)
		assert.Equal(t, "myapp", cfg.SystemTag)
		assert.True(t, cfg.EnableMetrics)
		assert.Equal(t, "myapp", cfg.MetricsNamespace)
		assert.True(t, cfg.InternalErrorsToStderr)
	})

	t.Run("errors leave config unchanged", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride(
			"console_target=stderr",
			"console_level=verbose",
			"unknown_key=1",
			"no_equals_sign",
			"console_burst=many",
		)
		require.Error(t, err)

		assert.Contains(t, err.Error(), "multiple configuration errors")
		assert.Contains(t, err.Error(), "invalid level value 'verbose'")
		assert.Contains(t, err.Error(), "unknown configuration key 'unknown_key'")
		assert.Contains(t, err.Error(), "expected key=value")
		assert.Contains(t, err.Error(), "invalid integer value for console_burst")
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("single error keeps its own message", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride("show_thread=maybe")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "multiple")
		assert.Contains(t, err.Error(), "funnel: invalid boolean value for show_thread")
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := ConfigFromEnv("FUNNELTEST_EMPTY_")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("FUNNELTEST_CONSOLE_TARGET", "stderr")
		t.Setenv("FUNNELTEST_CONSOLE_LEVEL", "warning")

		cfg, err := ConfigFromEnv("FUNNELTEST_")
		require.NoError(t, err)
		assert.Equal(t, TargetStderr, cfg.ConsoleTarget)
		assert.Equal(t, "warning", cfg.ConsoleLevel)
		assert.Equal(t, DefaultConfig().TimestampFormat, cfg.TimestampFormat)
	})

	t.Run("invalid environment value", func(t *testing.T) {
		t.Setenv("FUNNELBAD_CONSOLE_TARGET", "printer")

		_, err := ConfigFromEnv("FUNNELBAD_")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid console_target")
	})
}
