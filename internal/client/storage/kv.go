package storage

import (
	"context"
)

//go:generate moq -out kv_mock.go . KV

// KV defines the narrow key-value capability the history store persists through.
// This is the lowest storage layer: values are opaque bytes (serialized history)
// and no backend interprets them.
type KV interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if the key doesn't exist
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key
	// Removing a missing key is not an error
	Remove(ctx context.Context, key string) error
}
