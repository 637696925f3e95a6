package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chatfuture:"

// KVCache is a Redis-backed key-value store. Entries expire after ttl of inactivity.
type KVCache interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type kvCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKVCache creates a Redis store; ttl 0 keeps keys forever
func NewKVCache(client *redis.Client, ttl time.Duration) KVCache {
	return &kvCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *kvCache) Save(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err()
}

func (c *kvCache) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.ttl > 0 {
		c.client.Expire(ctx, keyPrefix+key, c.ttl)
	}
	return data, nil
}

func (c *kvCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, keyPrefix+key).Err()
}
