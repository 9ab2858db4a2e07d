package snapshot

import (
	"sync"
	"sync/atomic"
)

// Cache holds the one process-wide snapshot: built lazily on first access,
// reused until Refresh. Publication is a single atomic pointer swap, so
// readers see either the old complete snapshot or the new one, never a mix,
// and never take a lock.
type Cache struct {
	build func() (*Snapshot, error)

	mu      sync.Mutex // serializes builds
	current atomic.Pointer[Snapshot]
}

// NewCache constructs a cache around a snapshot builder.
func NewCache(build func() (*Snapshot, error)) *Cache {
	return &Cache{build: build}
}

// Get returns the cached snapshot, building it on first access.
func (c *Cache) Get() (*Snapshot, error) {
	if snap := c.current.Load(); snap != nil {
		return snap, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if snap := c.current.Load(); snap != nil {
		return snap, nil
	}
	snap, err := c.build()
	if err != nil {
		return nil, err
	}
	c.current.Store(snap)
	return snap, nil
}

// Refresh builds a new snapshot and publishes it. On build failure the
// previous snapshot stays in place.
func (c *Cache) Refresh() (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, err := c.build()
	if err != nil {
		return nil, err
	}
	c.current.Store(snap)
	return snap, nil
}

// Invalidate drops the cached snapshot; the next Get rebuilds.
func (c *Cache) Invalidate() {
	c.current.Store(nil)
}
