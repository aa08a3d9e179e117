package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window counter shared across instances.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowSec := int64(l.window.Seconds())
	bucket := fmt.Sprintf("%s:%s:%d", l.prefix, key, time.Now().Unix()/windowSec)

	count, err := l.client.Do(
		ctx,
		l.client.B().Incr().Key(bucket).Build(),
	).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Do(
			ctx,
			l.client.B().Expire().Key(bucket).Seconds(windowSec).Build(),
		).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
