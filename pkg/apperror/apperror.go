// Package apperror defines the application's error taxonomy. Services return
// these typed errors and the HTTP layer maps them to status codes in one place.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// ValidationError represents missing or malformed input.
	ValidationError
	// ConflictError represents a uniqueness conflict, e.g. a taken username.
	ConflictError
	// AuthError represents an authentication failure (bad credentials or token).
	AuthError
	// NotFoundError represents a resource that does not exist for the caller.
	NotFoundError
	// DatabaseError represents an error originating from the storage layer.
	DatabaseError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError is the application's error type. It wraps an optional underlying
// error so callers can still use errors.Is / errors.As on the chain.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, err error) *AppError {
	return &AppError{Type: ValidationError, Message: message, Err: err}
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, err error) *AppError {
	return &AppError{Type: ConflictError, Message: message, Err: err}
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, err error) *AppError {
	return &AppError{Type: AuthError, Message: message, Err: err}
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Type: NotFoundError, Message: message, Err: err}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, err error) *AppError {
	return &AppError{Type: DatabaseError, Message: message, Err: err}
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: InternalError, Message: message, Err: err}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
