package shortlink

import "errors"

var (
	// ErrInvalidURL is returned when a candidate URL fails the shape check.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrNotFound is returned when no link is registered under a code.
	ErrNotFound = errors.New("short link not found")

	// ErrCodeConflict is returned by a Repository when the code is already taken.
	ErrCodeConflict = errors.New("short code already exists")

	// ErrCodeExhausted is returned when every allocation attempt collided.
	ErrCodeExhausted = errors.New("no free short code after max attempts")

	// ErrStorage wraps failures of the persistence collaborator.
	ErrStorage = errors.New("storage failure")
)
