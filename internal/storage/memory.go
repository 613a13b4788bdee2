package storage

import (
	"context"

	cache "github.com/patrickmn/go-cache"
)

// MemoryBackend keeps all keys in process memory. It is the default medium
// and the fake injected by tests.
type MemoryBackend struct {
	c *cache.Cache
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		c: cache.New(cache.NoExpiration, 0),
	}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.c.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *MemoryBackend) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.c.Get(key)
	return ok, nil
}
