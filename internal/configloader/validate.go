package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/leandoc/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g. "template").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Template != "" && !cfg.Template.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "template",
			Value:   cfg.Template,
			Message: fmt.Sprintf("invalid template %q; must be one of: plain, report", cfg.Template),
		})
	}

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.TemplateFile != "" && !strings.HasSuffix(cfg.TemplateFile, ".typ") {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "template_file",
			Value:   cfg.TemplateFile,
			Message: fmt.Sprintf("template file %q does not end in .typ", cfg.TemplateFile),
		})
	}

	return result
}
