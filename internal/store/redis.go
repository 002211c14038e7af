package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Redis persists each collection document as a plain Redis string.
// Documents never expire; the repository rewrites the full value on
// every mutation.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected client. The caller is expected
// to have pinged the server (see config.NewRedisClient).
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}
