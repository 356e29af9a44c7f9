// Package cache holds rendered chapter content in memory. Entries are
// created on first successful load and never evicted or expired.
package cache

import "sync"

// Cache maps chapter ids to rendered content. Only ids from the configured
// chapter list are ever stored. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	valid   map[string]bool
	entries map[string]string
}

// New creates a Cache that accepts only the given chapter ids.
func New(ids []string) *Cache {
	valid := make(map[string]bool, len(ids))
	for _, id := range ids {
		valid[id] = true
	}
	return &Cache{
		valid:   valid,
		entries: make(map[string]string),
	}
}

// Get returns the cached content for id, if present.
func (c *Cache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	content, ok := c.entries[id]
	return content, ok
}

// Put stores content for id. Ids outside the configured chapter list
// are dropped; the cache never holds unknown ids.
func (c *Cache) Put(id, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid[id] {
		return
	}
	c.entries[id] = content
}

// Reset drops all entries while keeping the configured id set. Used when
// the underlying content files changed on disk.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

// Len returns the number of cached chapters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
