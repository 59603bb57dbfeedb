// Package cache provides a transient read cache for derived balances. The
// database stays authoritative; a cold or unavailable cache only costs a
// recomputation.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edificio/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// DebtCache caches residents' derived outstanding balances between reads.
type DebtCache interface {
	Get(ctx context.Context, residentID uuid.UUID) (decimal.Decimal, bool, error)
	Set(ctx context.Context, residentID uuid.UUID, debt decimal.Decimal) error
	Invalidate(ctx context.Context, residentID uuid.UUID) error
}

const debtKeyPrefix = "debt:resident:"

// RedisDebtCache implements DebtCache using Redis
type RedisDebtCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDebtCache creates a Redis-backed debt cache
func NewRedisDebtCache(cfg config.RedisConfig, ttl time.Duration) (*RedisDebtCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisDebtCacheWithClient(client, ttl), nil
}

// NewRedisDebtCacheWithClient creates a cache with an existing Redis client
func NewRedisDebtCacheWithClient(client *redis.Client, ttl time.Duration) *RedisDebtCache {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &RedisDebtCache{client: client, ttl: ttl}
}

// Get returns the cached debt for a resident, with a hit flag
func (c *RedisDebtCache) Get(ctx context.Context, residentID uuid.UUID) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, debtKeyPrefix+residentID.String()).Result()
	if err == redis.Nil {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to read debt cache: %w", err)
	}

	debt, err := decimal.NewFromString(val)
	if err != nil {
		// Corrupted value, treat as a miss
		return decimal.Zero, false, nil
	}
	return debt, true, nil
}

// Set stores a resident's debt with the configured TTL
func (c *RedisDebtCache) Set(ctx context.Context, residentID uuid.UUID, debt decimal.Decimal) error {
	if err := c.client.Set(ctx, debtKeyPrefix+residentID.String(), debt.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write debt cache: %w", err)
	}
	return nil
}

// Invalidate drops a resident's cached debt
func (c *RedisDebtCache) Invalidate(ctx context.Context, residentID uuid.UUID) error {
	if err := c.client.Del(ctx, debtKeyPrefix+residentID.String()).Err(); err != nil {
		return fmt.Errorf("failed to invalidate debt cache: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (c *RedisDebtCache) Close() error {
	return c.client.Close()
}

// InMemoryDebtCache implements DebtCache with a process-local map. Used in
// tests and as a fallback when Redis is unavailable.
type InMemoryDebtCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]inMemoryDebtEntry
	ttl     time.Duration
}

type inMemoryDebtEntry struct {
	debt      decimal.Decimal
	expiresAt time.Time
}

// NewInMemoryDebtCache creates an in-memory debt cache
func NewInMemoryDebtCache(ttl time.Duration) *InMemoryDebtCache {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &InMemoryDebtCache{
		entries: make(map[uuid.UUID]inMemoryDebtEntry),
		ttl:     ttl,
	}
}

// Get returns the cached debt for a resident, with a hit flag
func (c *InMemoryDebtCache) Get(ctx context.Context, residentID uuid.UUID) (decimal.Decimal, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[residentID]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return decimal.Zero, false, nil
	}
	return entry.debt, true, nil
}

// Set stores a resident's debt with the configured TTL
func (c *InMemoryDebtCache) Set(ctx context.Context, residentID uuid.UUID, debt decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[residentID] = inMemoryDebtEntry{
		debt:      debt,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Invalidate drops a resident's cached debt
func (c *InMemoryDebtCache) Invalidate(ctx context.Context, residentID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, residentID)
	return nil
}
