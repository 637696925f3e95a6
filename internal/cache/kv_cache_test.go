package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a reachable Redis, e.g. CHATFUTURE_TEST_REDIS_ADDR=localhost:6379
func newTestCache(t *testing.T, ttl time.Duration) (KVCache, *redis.Client) {
	t.Helper()
	addr := os.Getenv("CHATFUTURE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CHATFUTURE_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return NewKVCache(client, ttl), client
}

func TestKVCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)
	key := "test_" + uuid.NewString()

	v, err := c.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, c.Save(ctx, key, []byte(`{"a":1}`)))
	v, err = c.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), v)

	require.NoError(t, c.Delete(ctx, key))
	v, err = c.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestKVCache_AppliesTTL(t *testing.T) {
	ctx := context.Background()
	c, client := newTestCache(t, time.Minute)
	key := "test_" + uuid.NewString()
	t.Cleanup(func() { c.Delete(ctx, key) })

	require.NoError(t, c.Save(ctx, key, []byte("x")))
	ttl, err := client.TTL(ctx, keyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}
