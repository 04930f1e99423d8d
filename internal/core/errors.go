package core

import (
	"errors"
	"fmt"
)

// Error code constants
const (
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
	ErrCodeUpstream      = "UPSTREAM_ERROR"
)

// AppError is the unified application error type carrying an error code,
// a human-readable message and an optional underlying cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap supports errors.Unwrap.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a configuration error. Configuration errors
// are detected before any network call and are never retried.
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: message,
	}
}

// NewUpstreamError creates an upstream error wrapping any failure from the
// upstream provider: transport error, non-2xx status or malformed response.
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstream,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeConfiguration
}

// IsUpstreamError reports whether err is an upstream error.
func IsUpstreamError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeUpstream
}
