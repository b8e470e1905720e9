package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend string // none, file, redis, mongo; empty means file
	Dir     string // file backend directory
	URL     string // redis or mongo connection URL

	MongoDatabase   string
	MongoCollection string
}

// Open builds the cache described by cfg.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return NewFileCache(cfg.Dir)
	case BackendRedis:
		if cfg.URL == "" {
			return nil, fmt.Errorf("redis cache: url is required")
		}
		return NewRedisCache(ctx, cfg.URL)
	case BackendMongo:
		if cfg.URL == "" {
			return nil, fmt.Errorf("mongo cache: url is required")
		}
		return NewMongoCache(ctx, cfg.URL, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
