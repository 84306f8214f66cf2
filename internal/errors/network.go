package errors

import (
	"errors"
	"fmt"
	"time"
)

// NetworkUnavailable creates an error for network connectivity issues.
func NetworkUnavailable(host string, cause error) *CatalogError {
	err := &CatalogError{
		Kind:    ErrNetwork,
		Message: "network unavailable",
		Cause:   cause,
		Suggestion: `Check your network connection:
  1. Verify internet connectivity
  2. Check if VPN or firewall is blocking access

If you're behind a proxy:
  export HTTP_PROXY=http://proxy:port
  export HTTPS_PROXY=http://proxy:port`,
	}
	if host != "" {
		err.Details = map[string]string{"host": host}
	}
	return err
}

// OperationTimeout creates a generic timeout error.
func OperationTimeout(operation string, elapsed time.Duration) *CatalogError {
	return &CatalogError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("%s timed out after %v", operation, elapsed.Round(time.Millisecond)),
		Details: map[string]string{
			"operation": operation,
			"elapsed":   elapsed.Round(time.Millisecond).String(),
		},
		Suggestion: "Increase source.timeout in .vitrina/config.yaml or try again later.",
	}
}

// IsRetryable returns true if the error is likely transient and retrying may succeed.
func IsRetryable(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		switch ce.Kind {
		case ErrNetwork, ErrTimeout, ErrLoad:
			return true
		}
	}
	return false
}

// IsUserError returns true if the error is due to user misconfiguration.
func IsUserError(err error) bool {
	return errors.Is(err, ErrConfig)
}
