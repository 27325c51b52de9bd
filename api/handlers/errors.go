// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	apperrors "profile-search-api/core/errors"
)

const internalErrorMessage = "Internal server error"

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Only messages written for callers reach the response body.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return huma.Error400BadRequest(validationErr.Message)
	}

	var unavailableErr *apperrors.ToolUnavailableError
	if errors.As(err, &unavailableErr) {
		// The install guidance is the whole point of this response
		return huma.Error500InternalServerError(unavailableErr.Error())
	}

	var timeoutErr *apperrors.ToolTimeoutError
	if errors.As(err, &timeoutErr) {
		return huma.Error504GatewayTimeout(timeoutErr.Error())
	}

	return huma.Error500InternalServerError(internalErrorMessage)
}
