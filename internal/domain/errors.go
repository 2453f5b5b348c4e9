package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the few failures the mock session model has.
var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidTheme = errors.New("invalid theme")
	ErrNoSession    = errors.New("no active session")
	ErrNotFound     = errors.New("requested resource not found")
)
