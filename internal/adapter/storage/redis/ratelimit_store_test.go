package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis, *time.Time) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := time.Unix(1_700_000_000, 0)
	store := NewRateLimitStore(client)
	store.now = func() time.Time { return clock }
	return store, mr, &clock
}

func TestRateLimitStore_Allow(t *testing.T) {
	store, mr, clock := newTestStore(t)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "GV-12345:account_quotes", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "GV-12345:account_quotes", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:quotes", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("counter carries a ttl", func(t *testing.T) {
		_, err := store.Allow(ctx, "ttl:quotes", 5, time.Minute)
		require.NoError(t, err)

		windowID := clock.Unix() / 60
		ttl := mr.TTL(rateLimitPrefix + "ttl:quotes:" + itoa(windowID))
		assert.Equal(t, 61*time.Second, ttl)
	})

	t.Run("new window resets the count", func(t *testing.T) {
		key := "GV-45678:account_quotes"
		_, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)

		result, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		*clock = clock.Add(time.Minute)
		result, err = store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("reset is the end of the window", func(t *testing.T) {
		result, err := store.Allow(ctx, "reset:quotes", 10, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, (clock.Unix()/60+1)*60, result.ResetAt)
		assert.Greater(t, result.ResetAt, clock.Unix())
	})
}

func TestRateLimitStore_SubSecondWindow(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, err := store.Allow(context.Background(), "k", 1, 500*time.Millisecond)
	assert.Error(t, err)
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	store, mr, _ := newTestStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "k", 1, time.Minute)
	assert.ErrorContains(t, err, "redis rate limit incr")
}

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "redis", hc.Name())

	mr.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
