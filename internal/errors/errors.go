// Package errors provides error types with actionable suggestions for vitrina.
// Errors carry a kind sentinel for errors.Is plus the context a user needs to
// fix the problem.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrLoad indicates the catalog document could not be loaded. It is fatal
	// for the browser.
	ErrLoad = errors.New("catalog load error")
	// ErrData indicates the catalog document is structurally invalid.
	ErrData = errors.New("catalog data error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrNetwork indicates a network-related error.
	ErrNetwork = errors.New("network error")
	// ErrTimeout indicates a timeout occurred.
	ErrTimeout = errors.New("timeout error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// CatalogError is the base error type for vitrina errors.
type CatalogError struct {
	// Kind is the category of error (e.g., ErrLoad, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., source location, status code).
	Details map[string]string
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *CatalogError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error kind matches the target.
func (e *CatalogError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *CatalogError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *CatalogError) WithDetails(key, value string) *CatalogError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new CatalogError with the given kind and message.
func New(kind error, message string) *CatalogError {
	return &CatalogError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *CatalogError {
	return &CatalogError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// FormatError renders err with Format when it is a CatalogError and with
// Error otherwise.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Format()
	}
	return "Error: " + err.Error() + "\n"
}
