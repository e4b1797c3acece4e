package models

import "errors"

// Domain errors shared across services and handlers. Handlers map these
// to HTTP status codes with errors.Is.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPostNotFound       = errors.New("post not found")
)
