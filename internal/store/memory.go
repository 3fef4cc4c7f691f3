package store

import (
	"context"
	"sync"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
)

// MemoryStore is an in-memory implementation of shortlink.Repository.
type MemoryStore struct {
	mu    sync.RWMutex
	links map[shortlink.Code]shortlink.ShortLink
}

// NewMemoryStore creates a new in-memory short link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[shortlink.Code]shortlink.ShortLink),
	}
}

func (m *MemoryStore) Save(_ context.Context, link *shortlink.ShortLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.Code]; exists {
		return shortlink.ErrCodeConflict
	}

	m.links[link.Code] = *link

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortlink.Code) (*shortlink.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[code]
	if !ok {
		return nil, shortlink.ErrNotFound
	}

	return &link, nil
}

// Len returns the number of stored links.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.links)
}

// Ping always succeeds.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

var _ shortlink.Repository = (*MemoryStore)(nil)
