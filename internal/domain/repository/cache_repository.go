package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level cache with TTL semantics.
type CacheRepository interface {
	// Get returns the cached value, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}
