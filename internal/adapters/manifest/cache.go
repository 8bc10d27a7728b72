// Package manifest loads Vite build manifests and memoizes them per path.
package manifest

import (
	"sync"

	"go.trai.ch/vitetags/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Cache holds parsed manifests keyed by absolute path.
//
// Entries are never invalidated: a manifest is an immutable snapshot of build
// output for the lifetime of the process. Concurrent first loads of the same
// path share a single load, and an entry becomes visible only once fully parsed.
// Failed loads are not cached.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*domain.Manifest
	group   singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*domain.Manifest),
	}
}

// Get returns the cached manifest for path.
func (c *Cache) Get(path string) (*domain.Manifest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.entries[path]
	return m, ok
}

// GetOrLoad returns the cached manifest for path, calling load on a miss.
func (c *Cache) GetOrLoad(path string, load func() (*domain.Manifest, error)) (*domain.Manifest, error) {
	if m, ok := c.Get(path); ok {
		return m, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		// A caller that lost the race to Do may arrive after the winner stored the entry.
		if m, ok := c.Get(path); ok {
			return m, nil
		}

		m, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[path] = m
		c.mu.Unlock()

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	m, _ := v.(*domain.Manifest)
	return m, nil
}

// Len returns the number of cached manifests.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
