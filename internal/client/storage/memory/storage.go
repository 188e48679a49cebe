// Package memory implements an in-process storage.KV.
// Nothing survives the process; used for tests and the "memory" backend.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/carcost/internal/client/storage"
)

// Storage represents in-memory storage implementation
type Storage struct {
	data     map[string][]byte
	writeErr error
	mu       sync.RWMutex
}

var _ storage.KV = (*Storage)(nil)

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

// Get retrieves the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return clone(value), nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	s.data[key] = clone(value)
	return nil
}

// Remove deletes key, a missing key is not an error
func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	delete(s.data, key)
	return nil
}

// Has reports whether key is present
func (s *Storage) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok
}

// FailWrites makes every following Set and Remove return err.
// nil restores normal behavior.
func (s *Storage) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeErr = err
}

// Close is a no-op, present so every backend is an io.Closer
func (s *Storage) Close() error {
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
