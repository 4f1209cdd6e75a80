// ABOUTME: Error types and helpers for the cocktails library
// ABOUTME: Wraps configuration failures and classifies errors surfaced by lookups

package cocktails

import (
	"errors"
	"fmt"

	coreerrors "cocktails-app-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration indicates the client was configured incorrectly
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
)

// TransportMessage is the message carried by every failed upstream call
const TransportMessage = coreerrors.TransportMessage

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
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
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsConfigurationError checks if an error came from client configuration
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeConfiguration
}

// IsTransportError reports whether an upstream request failed
func IsTransportError(err error) bool {
	return coreerrors.IsTransport(err)
}

// IsNotFoundError reports whether a lookup matched nothing
func IsNotFoundError(err error) bool {
	return coreerrors.IsNotFound(err)
}

// IsValidationError reports whether an argument was rejected
func IsValidationError(err error) bool {
	return coreerrors.IsValidation(err)
}
