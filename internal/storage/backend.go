// Package storage persists the tracker blob in a key-value backend and
// validates it on the way back in.
package storage

import "context"

// Backend is a key-value store holding opaque blobs.
//
//go:generate mockgen -source=backend.go -destination=../tracker/mock_backend_test.go -package=tracker
type Backend interface {
	// Get returns the blob stored under key. found is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (blob []byte, found bool, err error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, blob []byte) error
}

var (
	_ Backend = (*SQLite)(nil)
	_ Backend = (*Memory)(nil)
	_ Backend = Nop{}
)
