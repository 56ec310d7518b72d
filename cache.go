package loom

import "sync"

// cacheEntry holds one constructed instance. The per-entry mutex serializes
// construction so exactly one factory invocation wins a race; failed
// constructions leave done unset and may be retried.
type cacheEntry struct {
	mu    sync.Mutex
	done  bool
	value any
}

// instanceCache provides thread-safe construct-once caching for singleton
// and scoped instances. The registry lock is never held while a factory
// runs, so factories are free to resolve their own dependencies.
type instanceCache struct {
	mu      sync.RWMutex
	entries map[Identifier]*cacheEntry
}

func newInstanceCache() *instanceCache {
	return &instanceCache{
		entries: make(map[Identifier]*cacheEntry),
	}
}

// entry returns the cache entry for id, creating it if needed.
func (c *instanceCache) entry(id Identifier) *cacheEntry {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if ok {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok = c.entries[id]; ok {
		return e
	}
	e = &cacheEntry{}
	c.entries[id] = e
	return e
}

// getOrCreate returns the cached instance for id, invoking build exactly once
// to construct it. Concurrent callers block until the winning build returns
// and then observe the same instance. Entry locks are taken in dependency
// order, so acyclic graphs cannot deadlock.
func (c *instanceCache) getOrCreate(id Identifier, build func() (any, error)) (any, error) {
	e := c.entry(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done {
		return e.value, nil
	}

	value, err := build()
	if err != nil {
		return nil, err
	}

	e.value = value
	e.done = true
	return value, nil
}

// delete removes the entry for id. Subsequent resolutions construct anew.
func (c *instanceCache) delete(id Identifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}
