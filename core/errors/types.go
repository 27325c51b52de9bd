// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError represents a validation error on caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// ToolUnavailableError is returned when the discovery tool cannot be started
type ToolUnavailableError struct {
	// Program is the executable that could not be launched
	Program string

	// Hint tells the operator how to make the tool available
	Hint string

	// Cause is the underlying start failure
	Cause error
}

// Error implements the error interface
func (e *ToolUnavailableError) Error() string {
	if e.Hint != "" {
		return e.Hint
	}
	return fmt.Sprintf("%s is not available on this host", e.Program)
}

// Unwrap returns the underlying cause
func (e *ToolUnavailableError) Unwrap() error {
	return e.Cause
}

// ToolTimeoutError is returned when a tool run exceeds its deadline
type ToolTimeoutError struct {
	Program string
	Timeout time.Duration
}

// Error implements the error interface
func (e *ToolTimeoutError) Error() string {
	return fmt.Sprintf("%s did not finish within %v", e.Program, e.Timeout)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsToolUnavailable checks if an error is a ToolUnavailableError
func IsToolUnavailable(err error) bool {
	var unavailableErr *ToolUnavailableError
	return errors.As(err, &unavailableErr)
}

// IsToolTimeout checks if an error is a ToolTimeoutError
func IsToolTimeout(err error) bool {
	var timeoutErr *ToolTimeoutError
	return errors.As(err, &timeoutErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
