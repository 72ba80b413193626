package config

import (
	"fmt"
	"slices"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "logging.level").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var (
	validLogLevels      = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats     = []string{"json", "text", "console"}
	validHistoryBackend = []string{"sqlite", "memory"}
)

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)
	errs = append(errs, validateScaffold(&cfg.Scaffold)...)
	errs = append(errs, validateHistory(&cfg.History)...)

	if cfg.Watch.Debounce < 0 {
		errs = append(errs, FieldError{Field: "watch.debounce", Message: "must not be negative"})
	}
	if cfg.Git.Depth < 0 {
		errs = append(errs, FieldError{Field: "git.depth", Message: "must not be negative"})
	}
	if cfg.Git.Timeout < 0 {
		errs = append(errs, FieldError{Field: "git.timeout", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError
	if !slices.Contains(validLogLevels, strings.ToLower(cfg.Level)) {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q, must be one of: %s", cfg.Level, strings.Join(validLogLevels, ", ")),
		})
	}
	if !slices.Contains(validLogFormats, strings.ToLower(cfg.Format)) {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q, must be one of: %s", cfg.Format, strings.Join(validLogFormats, ", ")),
		})
	}
	return errs
}

func validateMetrics(cfg *MetricsConfig) []FieldError {
	var errs []FieldError
	if !slices.IsSorted(cfg.DurationBuckets) {
		errs = append(errs, FieldError{Field: "metrics.duration_buckets", Message: "buckets must be in increasing order"})
	}
	for _, name := range []struct{ field, value string }{
		{"metrics.namespace", cfg.Namespace},
		{"metrics.subsystem", cfg.Subsystem},
	} {
		if strings.ContainsAny(name.value, " -.") {
			errs = append(errs, FieldError{Field: name.field, Message: "must be a valid metric name component"})
		}
	}
	return errs
}

func validateScaffold(cfg *ScaffoldConfig) []FieldError {
	var errs []FieldError
	if strings.ContainsAny(cfg.DefaultsFile, `/\`) {
		errs = append(errs, FieldError{Field: "scaffold.defaults_file", Message: "must be a base name, not a path"})
	}
	if cfg.SniffBytes < 0 {
		errs = append(errs, FieldError{Field: "scaffold.sniff_bytes", Message: "must not be negative"})
	}
	return errs
}

func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError
	if !slices.Contains(validHistoryBackend, cfg.Backend) {
		errs = append(errs, FieldError{
			Field:   "history.backend",
			Message: fmt.Sprintf("invalid backend %q, must be one of: %s", cfg.Backend, strings.Join(validHistoryBackend, ", ")),
		})
	}
	if cfg.Enabled && cfg.Backend == "sqlite" && cfg.Path == "" {
		errs = append(errs, FieldError{Field: "history.path", Message: "required for the sqlite backend"})
	}
	if cfg.BusyTimeout < 0 {
		errs = append(errs, FieldError{Field: "history.busy_timeout", Message: "must not be negative"})
	}
	if cfg.RetentionDays < 0 {
		errs = append(errs, FieldError{Field: "history.retention_days", Message: "must not be negative"})
	}
	return errs
}
