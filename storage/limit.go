package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by Limit when a value is larger than the
// quota. Browser local storage fails the same way once a large signature
// data URL no longer fits.
var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// Limit wraps a Store and rejects values larger than Max bytes.
type Limit struct {
	Store Store
	Max   int
}

// NewLimit returns a Store that refuses values over maxBytes bytes.
func NewLimit(s Store, maxBytes int) *Limit {
	return &Limit{Store: s, Max: maxBytes}
}

// Load implements Store.
func (l *Limit) Load(ctx context.Context, key string) ([]byte, error) {
	return l.Store.Load(ctx, key)
}

// Save implements Store.
func (l *Limit) Save(ctx context.Context, key string, value []byte) error {
	if len(value) > l.Max {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrQuotaExceeded, len(value), l.Max)
	}
	return l.Store.Save(ctx, key, value)
}
