// Package memory provides a process-local key-value backend. It backs
// the "memory" data backend for development and, with its fault hooks,
// the storage-failure paths in tests.
package memory

import (
	"context"
	"sync"
)

type KV struct {
	mu      sync.Mutex
	data    map[string][]byte
	readErr error
	putErr  error
}

func New() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value, or (nil, nil) if the key has
// never been written.
func (k *KV) Get(_ context.Context, key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.readErr != nil {
		return nil, k.readErr
	}
	v, ok := k.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (k *KV) Put(_ context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.putErr != nil {
		return k.putErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	k.data[key] = stored
	return nil
}

func (k *KV) Close() error { return nil }

// Seed writes a raw value without going through Put, bypassing any
// injected write fault.
func (k *KV) Seed(key string, value []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.data[key] = value
}

// FailReads makes subsequent Gets return err (nil clears the fault).
func (k *KV) FailReads(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.readErr = err
}

// FailWrites makes subsequent Puts return err (nil clears the fault).
func (k *KV) FailWrites(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.putErr = err
}
