package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors. Their messages are sent to clients verbatim.
	ErrMissingEmail    = errors.New("Missing email")
	ErrMissingPassword = errors.New("Missing password")
	ErrPasswordTooLong = errors.New("Password too long")

	// Credential errors.
	ErrIncorrectPassword  = errors.New("Incorrect password")
	ErrEmailAlreadyExists = errors.New("Email already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
