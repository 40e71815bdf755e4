// Package remote implements the storage contract on top of an object
// store, reconstructing the filesystem view by replaying an append-only
// journal of immutable segment objects.
package remote

import "context"

// ObjectClient is the minimal object-store capability the journaled store
// needs. Implementations must be safe for concurrent use: the store
// shares one client across every lazily-reading file handle it returns,
// with no synchronization, because the client holds no per-request state.
type ObjectClient interface {
	// GetObject fetches the full body of the object at key.
	GetObject(ctx context.Context, key string) ([]byte, error)

	// PutObject writes body as a new object at key.
	PutObject(ctx context.Context, key string, body []byte) error

	// ListKeys returns the keys of all objects under prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
