// Package storage persists the saved signature.
//
// A Store is a flat key-value slot store: values are opaque byte strings,
// writes replace the previous value, and there is no versioning. The pad
// keeps a single key, "savedSignature", holding a PNG data URL.
package storage

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
)

// ErrNotFound is returned by Load when the key holds no value.
var ErrNotFound = errors.New("storage: not found")

// Store persists values by key.
type Store interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}

// Memory is an in-process Store. The zero value is ready to use and
// Memory is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Store. The returned slice is a copy.
func (m *Memory) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

// Save implements Store. The value is copied.
func (m *Memory) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = slices.Clone(value)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.values))
}

// Ensure implementations satisfy Store at compile time.
var (
	_ Store = (*Memory)(nil)
	_ Store = (*Dir)(nil)
	_ Store = (*Limit)(nil)
)
