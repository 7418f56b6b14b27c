package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrTransactionNotFound    = errors.New("transaction not found")

	// Signup / verification flow.
	ErrPasskeyNotFound      = errors.New("no passkey found for this email")
	ErrPasskeyExpired       = errors.New("passkey expired")
	ErrMaxAttemptsExceeded  = errors.New("max attempts exceeded")
	ErrInvalidPasskey       = errors.New("invalid passkey")
	ErrInvalidSignupSession = errors.New("invalid or expired signup session")
	ErrSignupSessionExpired = errors.New("signup session expired")
	ErrInvalidSignupToken   = errors.New("invalid signup token")

	// Non-fatal transport failures; logged, never returned to clients
	// as the failure reason of an already-committed mutation.
	ErrDeliveryFailed = errors.New("delivery failed")
)

// RateLimitError reports that a cooldown window is still active.
// WaitSeconds is always positive and rounded up.
type RateLimitError struct {
	WaitSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("please wait %ds before resending", e.WaitSeconds)
}

// ValidationError names the offending field so handlers can surface it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
