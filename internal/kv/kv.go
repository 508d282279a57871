// Package kv provides pluggable key-value persistence for the platform.
//
// The product's record store keeps whole collections as serialized values
// under well-known keys, so the persistence contract is deliberately small:
// get, set, delete. Implementations: SQLite for the server, an in-memory map
// for tests and ephemeral demo runs.
package kv

import (
	"context"
)

// Store is the persistence contract consumed by the record store.
type Store interface {
	// Get retrieves the value for key. The second return is false when the
	// key is absent; absence is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the backing store.
	Close() error
}
