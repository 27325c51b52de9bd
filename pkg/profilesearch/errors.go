// ABOUTME: Error types and handling for the profile search library
// ABOUTME: Provides structured errors with a type callers can switch on

package profilesearch

import (
	"context"
	"errors"
	"fmt"

	apperrors "profile-search-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates the username was rejected
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeToolUnavailable indicates the discovery tool could not be started
	ErrorTypeToolUnavailable ErrorType = "tool_unavailable"

	// ErrorTypeTimeout indicates the discovery tool ran past its deadline
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeNetwork indicates the remote server could not be reached
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates any other failure
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates an invalid client option
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// fromCoreError converts an error returned by the search service
func fromCoreError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return NewError(ErrorTypeValidation, validationErr.Message)
	}

	var unavailableErr *apperrors.ToolUnavailableError
	if errors.As(err, &unavailableErr) {
		return NewError(ErrorTypeToolUnavailable, unavailableErr.Error()).WithCause(unavailableErr.Cause)
	}

	var timeoutErr *apperrors.ToolTimeoutError
	if errors.As(err, &timeoutErr) {
		return NewError(ErrorTypeTimeout, timeoutErr.Error())
	}

	if errors.Is(err, context.Canceled) {
		return NewError(ErrorTypeInternal, "search canceled").WithCause(err)
	}

	return NewError(ErrorTypeInternal, "search failed").WithCause(err)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsToolUnavailableError checks if the discovery tool could not be started
func IsToolUnavailableError(err error) bool {
	return isType(err, ErrorTypeToolUnavailable)
}

// IsTimeoutError checks if an error is a timeout error
func IsTimeoutError(err error) bool {
	return isType(err, ErrorTypeTimeout)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsInternalError checks if an error is an internal error
func IsInternalError(err error) bool {
	return isType(err, ErrorTypeInternal)
}
