// Package metadata provides the client's key/value stores: a durable
// SQLite-backed store, a process-lifetime in-memory store used for
// session-scoped values and, in the browser build, adapters over
// localStorage and sessionStorage.
package metadata

import (
	"context"
)

// Repository is a small key/value store.
//
// Get returns (nil, nil) for a missing key. Delete is idempotent. SetMany
// writes all pairs or none.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
