// Package cache provides the in-process memory tier of the resolution
// pipeline.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mlehnert/binsight/internal/core/domain"
	"github.com/mlehnert/binsight/internal/metrics"
)

type entry struct {
	product   domain.Product
	expiresAt time.Time
}

// Memory is a thread-safe in-process product cache with optional TTL.
// A zero TTL means entries never expire.
type Memory struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
}

// NewMemory creates an in-process cache. With a positive TTL a janitor
// goroutine evicts expired entries periodically.
func NewMemory(ttl time.Duration) *Memory {
	c := &Memory{
		data: make(map[string]entry),
		ttl:  ttl,
	}
	if ttl > 0 {
		go c.janitor()
	}
	return c
}

// Get retrieves a product by identifier.
func (c *Memory) Get(ctx context.Context, id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[id]
	if !ok {
		return domain.Product{}, false
	}
	if c.ttl > 0 && time.Now().After(e.expiresAt) {
		return domain.Product{}, false
	}
	return e.product, true
}

// Set stores a product under its identifier.
func (c *Memory) Set(ctx context.Context, p domain.Product) {
	if p.ID == "" {
		return
	}
	c.mu.Lock()
	c.data[p.ID] = entry{product: p, expiresAt: time.Now().Add(c.ttl)}
	metrics.CacheSize.Set(float64(len(c.data)))
	c.mu.Unlock()
}

// Size returns the number of cached products.
func (c *Memory) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear removes all entries.
func (c *Memory) Clear() {
	c.mu.Lock()
	c.data = make(map[string]entry)
	metrics.CacheSize.Set(0)
	c.mu.Unlock()
}

func (c *Memory) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for id, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, id)
			}
		}
		metrics.CacheSize.Set(float64(len(c.data)))
		c.mu.Unlock()
	}
}
