// Package cache provides a small sharded cache for memoizing content
// measurements across layout passes. The two pure grid computations never
// memoize anything themselves; caching lives here, behind the measurement
// boundary, where repeated passes over the same content are common.
package cache

import (
	"hash/fnv"
	"math"
	"sync"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Cache for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Cache is a thread-safe sharded cache with per-shard eviction of the
// least recently used entry once a shard exceeds its capacity.
type Cache[K comparable, V any] struct {
	shards   [DefaultShardCount]shard[K, V]
	hash     Hasher[K]
	capacity int
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	tick    int64
}

// entry holds a cached value with its last access time.
type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache with the given per-shard capacity and key hasher.
// A capacity of 0 or less uses DefaultCapacity.
func New[K comparable, V any](capacity int, hash Hasher[K]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{hash: hash, capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*entry[V])
	}
	return c
}

func (c *Cache[K, V]) shard(key K) *shard[K, V] {
	return &c.shards[c.hash(key)&shardMask]
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.tick++
	e.atime = s.tick
	return e.value, true
}

// Set stores a value in the cache. If the shard exceeds its capacity after
// insertion, the least recently used entry is evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++
	s.entries[key] = &entry[V]{value: value, atime: s.tick}

	if len(s.entries) <= c.capacity {
		return
	}
	var (
		oldestKey   K
		oldestAtime int64 = math.MaxInt64
	)
	for k, e := range s.entries {
		if e.atime < oldestAtime {
			oldestAtime = e.atime
			oldestKey = k
		}
	}
	delete(s.entries, oldestKey)
}

// Len returns the total number of cached entries across all shards.
func (c *Cache[K, V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[K]*entry[V])
		s.mu.Unlock()
	}
}
