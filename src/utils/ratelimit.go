package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	DB "github.com/growupanand/convoform/src/database"
)

// RateLimiter is a sliding-window counter over Redis sorted sets. One member
// per request, scored by unix nanos; members older than the window are dropped
// before counting.
type RateLimiter struct {
	limit  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
	}
}

// Allow reports whether another request is allowed for key right now.
// Without Redis (development mode) every request is allowed.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return true, nil
	}

	now := time.Now()
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	windowStart := now.Add(-rl.window).UnixNano()

	pipe := client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, redisKey, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limiter: %v", err)
	}

	return count.Val() < int64(rl.limit), nil
}
