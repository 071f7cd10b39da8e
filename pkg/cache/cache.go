package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by implementations that need to signal a missing key explicitly.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the key/value contract used for session storage.
// Values are JSON encoded by the implementation.
type Cache interface {
	// Get unmarshals the value stored under key into dest.
	// found is false on a cache miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
