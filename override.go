// FILE: override.go
package funnel

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies "key=value" overrides to the configuration.
// All overrides are attempted; failures are combined into one error and the
// configuration is left unchanged if any override fails.
//
// Example:
//
//	cfg := funnel.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "console_target=stderr",
//	    "console_level=warning",
//	    "console_rate_limit=50",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	cfg := c.Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	*c = *cfg
	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString(errorPrefix + "multiple configuration errors:")
	for i, err := range errors {
		// Remove prefix from individual errors to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), errorPrefix)
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Console output
	case "enable_console":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_console '%s': %w", value, err)
		}
		cfg.EnableConsole = boolVal
	case "console_target":
		cfg.ConsoleTarget = value
	case "console_level":
		if _, err := ParseLevel(value); err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.ConsoleLevel = value
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "show_thread":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for show_thread '%s': %w", value, err)
		}
		cfg.ShowThread = boolVal
	case "console_color":
		cfg.ConsoleColor = strings.ToLower(value)
	case "console_rate_limit":
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmtErrorf("invalid float value for console_rate_limit '%s': %w", value, err)
		}
		cfg.ConsoleRateLimit = floatVal
	case "console_burst":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for console_burst '%s': %w", value, err)
		}
		cfg.ConsoleBurst = intVal

	// System log
	case "enable_system":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_system '%s': %w", value, err)
		}
		cfg.EnableSystem = boolVal
	case "system_tag":
		cfg.SystemTag = value

	// Metrics
	case "enable_metrics":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_metrics '%s': %w", value, err)
		}
		cfg.EnableMetrics = boolVal
	case "metrics_namespace":
		cfg.MetricsNamespace = value

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
