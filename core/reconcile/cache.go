package reconcile

import (
	"context"
	"sync"
	"time"

	"listsync/core/storage"

	"golang.org/x/sync/singleflight"
)

// Snapshot is a decoded source object.
type Snapshot struct {
	// Object is the storage key the snapshot was read from.
	Object string

	// Records holds the source records in object order.
	Records []Record

	// Loaded is the timestamp when the snapshot was read.
	Loaded time.Time

	// TTL is the time-to-live of this snapshot.
	TTL time.Duration
}

// IsExpired returns true if this snapshot has expired based on its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true
	}
	return time.Since(s.Loaded) > s.TTL
}

// Cache holds loaded snapshots keyed by Spec.CacheKey.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group

	// generations counts invalidations per object. A load that started under an
	// older generation is returned to its callers but never stored.
	generations map[string]uint64

	// keys lists the cache keys seen per object so invalidation can forget
	// loads that are still running.
	keys map[string]map[string]struct{}
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{
		snapshots:   make(map[string]*Snapshot),
		generations: make(map[string]uint64),
		keys:        make(map[string]map[string]struct{}),
	}
}

// GetOrLoadSnapshot returns the cached snapshot for spec, or loads it if it is
// missing or expired. Concurrent loads of the same key are collapsed.
func (c *Cache) GetOrLoadSnapshot(ctx context.Context, client storage.Client, bucket string, spec *Spec) (*Snapshot, error) {
	key := spec.CacheKey()

	if snap, ok := c.fresh(key); ok {
		return snap, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		if snap, ok := c.fresh(key); ok {
			return snap, nil
		}

		gen := c.track(spec.SourceObject, key)
		records, err := LoadSnapshot(ctx, client, bucket, spec)
		if err != nil {
			return nil, err
		}

		snap := &Snapshot{Object: spec.SourceObject, Records: records, Loaded: time.Now(), TTL: spec.CacheTTL}
		if snap.TTL > 0 {
			c.store(key, snap, gen)
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// InvalidateSnapshot drops the cached snapshot for spec. A load of spec that is
// still running is not stored and later callers start a new one.
func (c *Cache) InvalidateSnapshot(spec *Spec) {
	key := spec.CacheKey()

	c.mu.Lock()
	delete(c.snapshots, key)
	c.generations[spec.SourceObject]++
	c.mu.Unlock()

	c.sf.Forget(key)
}

// InvalidateObject drops every cached snapshot read from object, whatever the
// adapter or id field used to decode it. Running loads of object are not stored.
func (c *Cache) InvalidateObject(object string) {
	c.mu.Lock()
	for key, snap := range c.snapshots {
		if snap.Object == object {
			delete(c.snapshots, key)
		}
	}
	c.generations[object]++
	keys := make([]string, 0, len(c.keys[object]))
	for key := range c.keys[object] {
		keys = append(keys, key)
	}
	c.mu.Unlock()

	for _, key := range keys {
		c.sf.Forget(key)
	}
}

func (c *Cache) fresh(key string) (*Snapshot, bool) {
	c.mu.RLock()
	snap, ok := c.snapshots[key]
	c.mu.RUnlock()
	if !ok || snap.IsExpired() {
		return nil, false
	}
	return snap, true
}

// track registers key under object and returns the current generation of object.
func (c *Cache) track(object, key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys[object] == nil {
		c.keys[object] = make(map[string]struct{})
	}
	c.keys[object][key] = struct{}{}
	return c.generations[object]
}

// store caches snap unless object was invalidated since gen was taken.
func (c *Cache) store(key string, snap *Snapshot, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[snap.Object] != gen {
		return
	}
	c.snapshots[key] = snap
}
