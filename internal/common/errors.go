// Package common defines shared constants and sentinel errors used across
// NexusCards services and repositories. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound = errors.New("user not found")

	// Account service errors.
	ErrDuplicateUser         = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidSecurityAnswer = errors.New("invalid security answer")

	// Transfer service errors.
	ErrInvalidDocument  = errors.New("invalid transfer document")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Underlying persistence failure.
	ErrStoreUnavailable = errors.New("local store unavailable")
)
