package auth

import (
	"context"
	"sync"
)

// Storage is the key/value backend a SessionStore writes through.  It is
// deliberately tiny (get/set/remove) so tests can substitute an in-memory
// fake and production can point at Redis without the session logic caring.
type Storage interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key.  Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// MemoryStorage is a mutex-guarded map implementing Storage.  It backs
// tests and single-node development setups.
type MemoryStorage struct {
	mu sync.RWMutex
	kv map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{kv: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, key)
	return nil
}
