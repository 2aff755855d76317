// Package cache provides a small in-memory TTL cache used to avoid
// re-fetching slow-moving exchange metadata such as tick sizes.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe map whose entries expire after a fixed duration.
// Expired entries are dropped lazily on access and swept on Set.
type TTL[K comparable, V any] struct {
	mu         sync.RWMutex
	items      map[K]entry[V]
	defaultTTL time.Duration
	lastSweep  time.Time
}

// NewTTL returns a cache whose entries live for defaultTTL unless Set is
// called with an explicit duration.
func NewTTL[K comparable, V any](defaultTTL time.Duration) *TTL[K, V] {
	return &TTL[K, V]{
		items:      make(map[K]entry[V]),
		defaultTTL: defaultTTL,
		lastSweep:  time.Now(),
	}
}

// Get returns the live value for key, if any.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(item.expiresAt) {
		var zero V
		return zero, false
	}
	return item.value, true
}

// Set stores value under key for ttl, or the default TTL when ttl is zero.
func (c *TTL[K, V]) Set(key K, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
	if now.Sub(c.lastSweep) > c.defaultTTL {
		for k, it := range c.items {
			if now.After(it.expiresAt) {
				delete(c.items, k)
			}
		}
		c.lastSweep = now
	}
}

// Delete removes key regardless of expiry.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len reports the number of stored entries, expired ones included.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
