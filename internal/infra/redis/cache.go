// Package redis provides a Redis-backed product cache that can replace the
// in-process memory tier when multiple instances should share it.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// Config holds Redis connection configuration.
type Config struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	TTL      time.Duration `yaml:"ttl"`
}

// Cache stores serialized products in Redis. Lookup failures degrade to a
// cache miss; the pipeline falls through to the next tier.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewCache creates a Redis product cache and verifies the connection.
func NewCache(cfg Config, log *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	if log == nil {
		log = slog.Default()
	}

	return &Cache{rdb: rdb, ttl: ttl, log: log}, nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Health checks the Redis connection.
func (c *Cache) Health(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// Get retrieves a product by identifier. Any Redis or decode failure is
// treated as a miss.
func (c *Cache) Get(ctx context.Context, id string) (domain.Product, bool) {
	val, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err == redis.Nil {
		return domain.Product{}, false
	}
	if err != nil {
		c.log.Warn("redis get failed", "id", id, "error", err)
		return domain.Product{}, false
	}

	var p domain.Product
	if err := json.Unmarshal(val, &p); err != nil {
		c.log.Warn("redis entry corrupt, dropping", "id", id, "error", err)
		_ = c.rdb.Del(ctx, productKey(id)).Err()
		return domain.Product{}, false
	}
	return p, true
}

// Set stores a product under its identifier. Failures are logged, never
// surfaced; the cache is best-effort.
func (c *Cache) Set(ctx context.Context, p domain.Product) {
	if p.ID == "" {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		c.log.Warn("redis marshal failed", "id", p.ID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, productKey(p.ID), data, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", "id", p.ID, "error", err)
	}
}
