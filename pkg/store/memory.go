package store

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryBackend keeps values for the life of the process
type MemoryBackend struct {
	items *cache.Cache
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	v, found := m.items.Get(key)
	if !found {
		return nil, ErrNotFound
	}
	stored := v.([]byte)
	return append([]byte(nil), stored...), nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.items.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *MemoryBackend) Close() error {
	m.items.Flush()
	return nil
}
