package infrastructure

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisKV keeps the persisted snapshot keys in redis under a namespace.
// SET is atomic per key.
type RedisKV struct {
	client    *redis.Client
	namespace string
}

func NewRedisKV(addr, password string, db int, namespace string) *RedisKV {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	slog.Info("redis kv initialized", "addr", addr, "db", db)
	return &RedisKV{client: c, namespace: namespace}
}

func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.namespace+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil // redis.Nil -> ok: false, err: nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.namespace+key, value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.namespace+key).Err()
}
