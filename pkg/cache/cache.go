// Package cache provides pluggable byte caches for catalog downloads and
// rendered reports.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for `langcolors serve` deployments
//   - [NullCache]: never stores anything (--no-cache)
//
// All backends implement [Cache]. Keys are built by a [Keyer] so different
// kinds of entries never collide, and [NewScopedKeyer] adds a prefix for
// deployments sharing one Redis instance.
//
// # Retry
//
// [RetryWithBackoff] retries functions whose errors are wrapped with
// [Retryable]; it is used by the HTTP client around network calls.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	// TTLHTTP applies to raw HTTP response bodies (languages.yml).
	TTLHTTP = 24 * time.Hour

	// TTLArtifact applies to rendered report artifacts. Artifacts are keyed
	// by content hash, so a long TTL is safe.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. hit is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
