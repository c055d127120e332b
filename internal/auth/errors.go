package auth

import (
	"errors"
	"fmt"
)

// Error codes for session and token failures
const (
	// Token errors
	ErrTokenMalformed = "AUTH_TOKEN_MALFORMED"
	ErrTokenInvalid   = "AUTH_TOKEN_INVALID"
	ErrTokenExpired   = "AUTH_TOKEN_EXPIRED"

	// Session errors
	ErrSessionNotFound   = "AUTH_SESSION_NOT_FOUND"
	ErrSessionSuperseded = "AUTH_SESSION_SUPERSEDED"
	ErrStoreFailed       = "AUTH_STORE_FAILED"

	// Login errors
	ErrLoginFailed = "AUTH_LOGIN_FAILED"
)

// AuthError represents an authentication error with code and context.
type AuthError struct {
	// Code is the error code (e.g., AUTH_TOKEN_EXPIRED)
	Code string

	// Message is a human-readable error message
	Message string

	// Cause is the underlying error that caused this error
	Cause error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewError creates a new AuthError.
func NewError(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// WrapError wraps an existing error with an AuthError.
func WrapError(code, message string, cause error) *AuthError {
	return &AuthError{Code: code, Message: message, Cause: cause}
}

// IsAuthError checks if an error is an AuthError with the given code.
func IsAuthError(err error, code string) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code == code
	}
	return false
}
