package shortlink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/strategy"
)

// DefaultMaxAttempts bounds how many codes Register tries before giving up.
const DefaultMaxAttempts = 5

// Registry owns the create and lookup operations over short links.
type Registry struct {
	store        Repository
	generateCode CodeGenerator
	maxAttempts  uint
	now          func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxAttempts sets the allocation attempt bound. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxAttempts = uint(n)
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry creates a registry over store that draws codes from generator.
func NewRegistry(store Repository, generator CodeGenerator, opts ...Option) *Registry {
	r := &Registry{
		store:        store,
		generateCode: generator,
		maxAttempts:  DefaultMaxAttempts,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register validates candidate and stores it under a freshly allocated code.
//
// A code collision reported by the store triggers another attempt with a new
// code. Any other store failure is returned immediately, wrapped in ErrStorage.
func (r *Registry) Register(ctx context.Context, candidate string) (*ShortLink, error) {
	if err := ValidateURL(candidate); err != nil {
		return nil, err
	}

	var (
		link    *ShortLink
		lastErr error
	)

	onlyConflicts := func(_ uint) bool {
		return lastErr == nil || errors.Is(lastErr, ErrCodeConflict)
	}

	err := retry.Retry(func(_ uint) error {
		candidateLink := &ShortLink{
			Code:        Code(r.generateCode()),
			OriginalURL: candidate,
			CreatedAt:   r.now(),
		}

		lastErr = r.store.Save(ctx, candidateLink)
		if lastErr == nil {
			link = candidateLink
		}

		return lastErr
	}, strategy.Limit(r.maxAttempts), onlyConflicts)

	switch {
	case err == nil:
		return link, nil
	case errors.Is(err, ErrCodeConflict):
		return nil, fmt.Errorf("%w: %d attempts", ErrCodeExhausted, r.maxAttempts)
	default:
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

// Resolve returns the link registered under code.
func (r *Registry) Resolve(ctx context.Context, code Code) (*ShortLink, error) {
	link, err := r.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return link, nil
}
