package backend

import (
	"context"
	"sync"
)

// HandleCache memoizes loaded engine handles across requests. Loads are
// guarded so each engine initializes at most once; failed loads are not
// cached, so an engine that becomes available later in the process
// lifetime is picked up on a subsequent request. Reads are lock-cheap
// once a handle is populated.
type HandleCache struct {
	mu      sync.RWMutex
	handles map[string]Handle
}

// NewHandleCache creates an empty cache.
func NewHandleCache() *HandleCache {
	return &HandleCache{handles: make(map[string]Handle)}
}

// Get returns the cached handle for the engine, loading it on first use.
// The write lock is held for the duration of a load, so loads are
// serialized.
func (c *HandleCache) Get(ctx context.Context, e Engine) (Handle, error) {
	c.mu.RLock()
	h, ok := c.handles[e.Name()]
	c.mu.RUnlock()
	if ok {
		return h, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.handles[e.Name()]; ok {
		return h, nil
	}

	h, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.handles[e.Name()] = h
	return h, nil
}
