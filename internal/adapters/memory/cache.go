// Package memory provides an in-process implementation of ports.Cache.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/abacus/pkg/ports"
)

// Cache implements ports.Cache with a mutex-guarded map.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New creates an empty in-memory cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]string),
	}
}

// Get returns the value for key, or ports.ErrCacheMiss.
func (c *Cache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return v, nil
}

// Set stores value under key.
func (c *Cache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	return nil
}

// Delete removes key.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
