package store

import "context"

// KV is the durable key-value layer the store persists through. Get
// returns (nil, nil) when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
