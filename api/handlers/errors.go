// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"cocktails-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Upstream failures are reported with the fixed user-facing message only.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsTransport(err):
		return huma.Error503ServiceUnavailable(errors.TransportMessage)
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	}

	return huma.Error500InternalServerError("Internal server error")
}
