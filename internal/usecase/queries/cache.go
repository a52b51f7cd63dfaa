package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// readThrough serves key from cache, loading it once per key on a miss.
// Cache faults are logged and fall back to the loader.
type readThrough struct {
	cache  Cache
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

func newReadThrough(cache Cache, ttl time.Duration, logger *slog.Logger) *readThrough {
	return &readThrough{cache: cache, ttl: ttl, logger: logger}
}

func cached[T any](ctx context.Context, rt *readThrough, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, hit, err := rt.cache.Get(ctx, key)
	if err != nil {
		rt.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}
	if hit {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		rt.logger.WarnContext(ctx, "cache entry undecodable", "key", key)
	}

	res, err, _ := rt.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if encoded, mErr := json.Marshal(v); mErr == nil {
			if sErr := rt.cache.Set(ctx, key, encoded, rt.ttl); sErr != nil {
				rt.logger.WarnContext(ctx, "cache write failed", "key", key, "error", sErr)
			}
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}
