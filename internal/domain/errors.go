package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrSessionInvalid = errors.New("session no longer valid")
	ErrBackend        = errors.New("backend request failed")
)
