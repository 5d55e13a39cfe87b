package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 100
	defaultWindow = 15 * time.Minute
)

// FixedWindowLimiter counts requests per key in fixed time windows backed by
// Redis. Key format: ratelimit:<key>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
// Non-positive arguments fall back to 100 requests per 15 minutes.
func NewFixedWindowLimiter(client *redis.Client, limit int64, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether the request is
// within the window's budget. The expiry is set when the window opens.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + key
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}
