// Package store defines the key-value persistence mirror of the game.
//
// The game keeps two blobs (inventory and crafted history) and treats the
// store as opaque: it loads both once at startup, saves after every change
// and clears everything on reset.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("store: key not found")

// Store is a small key-value store. Implementations are safe for
// concurrent use.
type Store interface {
	// Load returns the blob saved under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the blob under key.
	Save(ctx context.Context, key string, blob []byte) error
	// Clear erases every key owned by the store.
	Clear(ctx context.Context) error
	Close() error
}

// Backend names accepted by configuration.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)
