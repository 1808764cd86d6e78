// Package cache centralises redis client construction, consuming either
// the cache URI derived by the settings loader or the CacheConfig
// projection directly.  Both helpers ping the server before returning so
// callers can fail fast during bootstrap.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/orbitai/orbit/internal/types"
)

// Open dials the redis URI (redis://[:password@]host:port/db).
func Open(ctx context.Context, uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}
	return connect(ctx, opt)
}

// OpenWithConfig dials from the CacheConfig projection.
func OpenWithConfig(ctx context.Context, cfg types.CacheConfig) (*redis.Client, error) {
	return connect(ctx, optionsFromConfig(cfg))
}

func optionsFromConfig(cfg types.CacheConfig) *redis.Options {
	return &redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func connect(ctx context.Context, opt *redis.Options) (*redis.Client, error) {
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
