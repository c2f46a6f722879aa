package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Implementations can be swapped (Redis, in-memory).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (found, error):
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest left untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, e.g.
	// "author_42_*". Used to invalidate all field-projection variants
	// of a single-item cache entry.
	DeletePattern(ctx context.Context, pattern string) error

	// Increment atomically increments an integer key, creating it at 1
	// when absent. Used for the list-cache version counters.
	Increment(ctx context.Context, key string) (int64, error)

	// SetNX stores a value only if the key does not exist yet.
	// Returns true when the value was set.
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping verifies the backend connection.
	Ping(ctx context.Context) error
}
