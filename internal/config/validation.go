package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors ValidationErrors

	durations := []struct {
		field string
		value time.Duration
	}{
		{"timeout", c.Timeout},
		{"latency_timeout", c.LatencyTimeout},
		{"poll_interval", c.PollInterval},
		{"drain_interval", c.DrainInterval},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, ValidationError{
				Field:   d.field,
				Message: "must be positive",
			})
		}
	}
	if c.Timeout > time.Minute {
		errors = append(errors, ValidationError{
			Field:   "timeout",
			Message: "exceeds reasonable limit (1m)",
		})
	}

	if !slices.Contains(validLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level '%s', valid: %s", c.LogLevel, strings.Join(validLevels, ", ")),
		})
	}
	if !slices.Contains(validFormats, c.Format) {
		errors = append(errors, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unknown format '%s', valid: %s", c.Format, strings.Join(validFormats, ", ")),
		})
	}

	if c.DarkTheme == "" {
		errors = append(errors, ValidationError{Field: "dark_theme", Message: "must be specified"})
	}
	if c.LightTheme == "" {
		errors = append(errors, ValidationError{Field: "light_theme", Message: "must be specified"})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
