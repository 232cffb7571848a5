package cache

import (
	"context"
	"time"
)

// Cache is the abstraction repositories depend on. The concrete Redis
// implementation lives in internal/infrastructure/cache.
type Cache interface {
	// Get unmarshals the cached value into dest. found=false means a
	// cache miss, not an error.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value (JSON-marshaled) with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
