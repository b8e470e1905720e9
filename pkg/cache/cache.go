// Package cache stores layout and render results keyed by content hash.
//
// Every pipeline stage is deterministic: the same roadmap document and the
// same options always produce the same scene and the same artifacts. The
// cache exploits that by keying entries on a hash of the inputs, so a cache
// entry can never be stale, only expired.
//
// # Backends
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one file per entry under the user cache directory (CLI)
//   - [RedisCache]: shared cache for several serve instances
//   - [MongoCache]: shared cache with a TTL index
//
// # Keys
//
// A [Keyer] turns stage inputs into keys. [ScopedKeyer] prefixes every key,
// which lets several roadmaps or tenants share one backend.
package cache

import (
	"context"
	"time"
)

// Default TTLs per stage.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A miss is reported as
// hit=false with a nil error; errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
