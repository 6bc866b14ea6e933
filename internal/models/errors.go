package models

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Callers branch on these with errors.Is; wrapped variants carry context.
var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("record not found")
	ErrRelayFailure    = errors.New("mail relay failure")
)
