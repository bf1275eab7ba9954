package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window counter shared across instances: INCR per
// key, EXPIRE on the first hit of a window.
type RedisLimiter struct {
	client rueidis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(client rueidis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) error {
	redisKey := l.prefix + key

	count, err := l.client.Do(
		ctx,
		l.client.B().Incr().Key(redisKey).Build(),
	).AsInt64()
	if err != nil {
		return err
	}

	if count == 1 {
		if err := l.client.Do(
			ctx,
			l.client.B().Expire().Key(redisKey).Seconds(int64(l.window.Seconds())).Build(),
		).Error(); err != nil {
			return err
		}
	}

	if count > int64(l.limit) {
		return ErrRateLimited
	}

	return nil
}
