package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore adapte un client go-redis à l'interface KVStore
type RedisStore struct {
	c *redis.Client
}

func NewRedisStore(c *redis.Client) *RedisStore {
	return &RedisStore{c: c}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl == KeepTTL {
		ttl = redis.KeepTTL
	}
	return s.c.Set(ctx, key, value, ttl).Err()
}
