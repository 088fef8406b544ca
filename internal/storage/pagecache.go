package storage

import (
	"sync"

	"github.com/rohmanhakim/park-finder/internal/metadata"
)

// PageCache maps request URLs to raw response bodies. Keys are compared as
// exact strings. Every Put rewrites the whole backing file.
type PageCache struct {
	mu      sync.Mutex
	entries map[string]string
	store   *FileStore[map[string]string]
}

// OpenPageCache loads the cache file at path. A missing or corrupt file
// opens as an empty cache.
func OpenPageCache(path string, metadataSink metadata.MetadataSink) *PageCache {
	store := NewFileStore[map[string]string](path, metadata.ArtifactPageCache, metadataSink)
	entries := store.Load()
	if entries == nil {
		entries = make(map[string]string)
	}
	return &PageCache{
		entries: entries,
		store:   store,
	}
}

func (c *PageCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

// Put stores value under key, replacing any previous value, and persists
// the full cache. The in-memory entry is kept even if persisting fails.
func (c *PageCache) Put(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return c.store.Save(c.entries)
}

func (c *PageCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
