package store

import (
	"context"
	"sync"
)

// TokenKey is the key under which the bearer token is persisted.
const TokenKey = "auth_token"

// Holder is a pluggable persistence layer for the session bearer token.
type Holder interface {
	// Get returns the persisted token, ok is false when no token is stored.
	Get(ctx context.Context) (token string, ok bool, err error)
	// Set persists the token, replacing any previous value.
	Set(ctx context.Context, token string) error
	// Remove deletes the persisted token; removing an absent token is not an error.
	Remove(ctx context.Context) error
}

type memoryHolder struct {
	mu    sync.RWMutex
	token *string
}

func (m *memoryHolder) Get(ctx context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == nil {
		return "", false, nil
	}
	return *m.token, true, nil
}

func (m *memoryHolder) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = &token
	return nil
}

func (m *memoryHolder) Remove(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	return nil
}

// NewMemory creates an in-process holder, optionally seeded with a token.
func NewMemory(options ...MemoryOption) Holder {
	ret := &memoryHolder{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// MemoryOption represents memory holder option
type MemoryOption func(*memoryHolder)

// WithToken seeds the memory holder
func WithToken(token string) MemoryOption {
	return func(m *memoryHolder) {
		m.token = &token
	}
}
