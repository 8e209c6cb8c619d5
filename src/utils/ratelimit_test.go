package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	DB "github.com/growupanand/convoform/src/database"
)

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	prev := DB.RedisClient
	DB.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		DB.RedisClient.Close()
		DB.RedisClient = prev
	})
	return mr
}

func TestRateLimiterAllow(t *testing.T) {
	t.Run("WithoutRedisEveryRequestIsAllowed", func(t *testing.T) {
		prev := DB.RedisClient
		DB.RedisClient = nil
		t.Cleanup(func() { DB.RedisClient = prev })

		limiter := NewRateLimiter(1, time.Minute)
		for i := 0; i < 5; i++ {
			allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, allowed)
		}
	})

	t.Run("DeniesOnceWindowIsFull", func(t *testing.T) {
		withTestRedis(t)

		limiter := NewRateLimiter(3, time.Minute)
		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should pass", i+1)
		}

		allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		withTestRedis(t)

		limiter := NewRateLimiter(1, time.Minute)
		allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)

		allowed, err = limiter.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, allowed)

		allowed, err = limiter.Allow(context.Background(), "5.6.7.8")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("WindowSlides", func(t *testing.T) {
		mr := withTestRedis(t)

		limiter := NewRateLimiter(1, time.Minute)
		allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)

		allowed, err = limiter.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		require.False(t, allowed)

		// the key carries a TTL of one window, so an idle key expires
		mr.FastForward(2 * time.Minute)
		allowed, err = limiter.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}
