// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted.
var ErrNotFound = errors.New("key not found")

// Store is a process-wide keyed blob store. Every logical store of the
// application (current session, users) is a single key holding a whole value;
// callers read the full value, modify it in memory and write it back.
//
// This abstraction allows swapping storage backends (SQLite, in-memory)
// without changing the account layer.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key. The write is durable when Put returns.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
