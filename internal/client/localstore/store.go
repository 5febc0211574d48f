// Package localstore persists small pieces of client state (the bearer token
// and the serialized session record) in a per-user sqlite file. It is the
// terminal-client equivalent of browser local storage: a flat key/value
// space, read and written without locking, where last writer wins.
package localstore

import "context"

// Store is a flat key/value store. Get returns (nil, nil) for a missing key;
// absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
