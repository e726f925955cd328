package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is returned when the token holder cannot reach redis.
var ErrRedisUnavailable = errors.New("redis unavailable")

// RedisHolder keeps the token in redis so that several processes on a host
// fleet can share one session.
type RedisHolder struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a Holder storing the token under prefix + "auth_token".
func NewRedis(client redis.UniversalClient, prefix string) *RedisHolder {
	return &RedisHolder{client: client, key: prefix + TokenKey}
}

// Key returns redis key
func (r *RedisHolder) Key() string {
	return r.key
}

func (r *RedisHolder) Get(ctx context.Context) (string, bool, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (r *RedisHolder) Set(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (r *RedisHolder) Remove(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
