package shortlink

import (
	"context"
	"time"
)

// Code is the short identifier a link is published under.
type Code string

// ShortLink maps a code to the URL it redirects to. Links are immutable.
type ShortLink struct {
	Code        Code
	OriginalURL string
	CreatedAt   time.Time
}

// Repository persists short links.
//
// Save must enforce code uniqueness: when the code is already taken it
// returns ErrCodeConflict and leaves the existing record untouched.
// GetByCode returns ErrNotFound when no record matches.
type Repository interface {
	Save(ctx context.Context, link *ShortLink) error
	GetByCode(ctx context.Context, code Code) (*ShortLink, error)
}

// CodeGenerator produces a fresh candidate code on each call.
type CodeGenerator func() string
