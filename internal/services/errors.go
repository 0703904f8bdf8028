package services

import "errors"

// Failure kinds reported by the core. The HTTP layer maps each to a status;
// callers match them with errors.Is.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrDuplicateReview    = errors.New("user has already reviewed this item")
	// ErrNotFound covers a missing row and a row owned by someone else alike.
	ErrNotFound = errors.New("not found")
)
