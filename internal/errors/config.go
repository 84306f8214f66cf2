package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *CatalogError {
	return &CatalogError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Regenerate a fresh file with: vitrina init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *CatalogError {
	suggestion := fmt.Sprintf("Fix the %q field in .vitrina/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}
	return &CatalogError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s: %s", field, message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
