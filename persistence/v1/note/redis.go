package note

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSlot keeps the serialized notes under a single redis key, with no expiration
type RedisSlot struct {
	cache   *redis.Client
	key     string
	timeout time.Duration
}

func NewRedisSlot(cache *redis.Client, key string, timeout time.Duration) *RedisSlot {
	return &RedisSlot{cache: cache, key: key, timeout: timeout}
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	tcCtx, tcCancel := context.WithTimeout(ctx, s.timeout)
	defer tcCancel()

	get, err := s.cache.Get(tcCtx, s.key).Bytes()
	switch {
	case err == redis.Nil:
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to get %s from cache: %w", s.key, err)
	default:
		return get, nil
	}
}

func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	tcCtx, tcCancel := context.WithTimeout(ctx, s.timeout)
	defer tcCancel()

	if err := s.cache.Set(tcCtx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s into cache: %w", s.key, err)
	}
	return nil
}
