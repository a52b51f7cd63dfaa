package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisCacheName = "redis"

type Observer interface {
	ObserveCache(cache, event string)
}

type RedisCache struct {
	client   *redis.Client
	prefix   string
	observer Observer
}

func NewRedisCache(client *redis.Client, prefix string, observer Observer) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, observer: observer}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.observer.ObserveCache(redisCacheName, "miss")
		return nil, false, nil
	}
	if err != nil {
		r.observer.ObserveCache(redisCacheName, "error")
		return nil, false, err
	}
	r.observer.ObserveCache(redisCacheName, "hit")
	return v, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		r.observer.ObserveCache(redisCacheName, "error")
		return err
	}
	r.observer.ObserveCache(redisCacheName, "set")
	return nil
}

// Nop never hits; used when REDIS_ADDR is empty.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
