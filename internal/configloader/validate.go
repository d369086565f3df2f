package configloader

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/yaklabco/golst/pkg/config"
	"github.com/yaklabco/golst/pkg/style"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "exclude[1]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.LogLevel != "" {
		if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "log_level",
				Value:   cfg.LogLevel,
				Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
			})
		}
	}

	if cfg.Color != "" && !knownColors[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Style != "" {
		if _, err := style.FormatFor(cfg.Style); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "style",
				Value:   cfg.Style,
				Message: err.Error(),
			})
		}
	}

	validatePatterns("include", cfg.Include, result)
	validatePatterns("exclude", cfg.Exclude, result)

	if len(cfg.Include) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "include",
			Message: "no include patterns; only files named on the command line are processed",
		})
	}

	return result
}

func validatePatterns(field string, patterns []string, result *ValidationResult) {
	for i, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" || !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}
}
