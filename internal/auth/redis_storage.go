package auth

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStorage implements Storage on a Redis client, namespacing every key
// under a per-session prefix ("sess:<sid>:").  Keys carry the session
// lifetime as their TTL so abandoned sessions disappear on their own even
// if no logout ever runs.
type RedisStorage struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStorage scopes a Storage to the given session id.
func NewRedisStorage(rdb *redis.Client, sessionID string) *RedisStorage {
	return &RedisStorage{rdb: rdb, prefix: "sess:" + sessionID + ":"}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, r.prefix+key, value, SessionLifetime).Err()
}

func (r *RedisStorage) Remove(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}
