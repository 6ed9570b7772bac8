package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "store:"

// RedisKV backs the state manager with a redis instance. Values never
// expire; every Set replaces the slice wholesale.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, stateKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, stateKeyPrefix+key, value, 0).Err()
}
