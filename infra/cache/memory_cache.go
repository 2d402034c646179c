package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache implements cache.PriceCache using in-memory storage
type MemoryCache struct {
	entries map[string]cacheEntry
	mu      sync.RWMutex
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type cacheEntry struct {
	amount    int64
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache. Expired entries are swept
// every interval until Close is called.
func NewMemoryCache(interval time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go c.cleanup(interval)
	return c
}

// Get retrieves an amount from cache
func (c *MemoryCache) Get(_ context.Context, priceID string) (int64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[priceID]
	if !exists || c.now().After(entry.expiresAt) {
		return 0, false, nil
	}
	return entry.amount, true, nil
}

// Set stores an amount with TTL
func (c *MemoryCache) Set(_ context.Context, priceID string, amount int64, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[priceID] = cacheEntry{
		amount:    amount,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

// Delete removes an amount from cache
func (c *MemoryCache) Delete(_ context.Context, priceID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, priceID)
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

func (c *MemoryCache) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *MemoryCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
