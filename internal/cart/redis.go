package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Client *redis.Client
	Prefix string
	// TTL of zero keeps snapshots until deleted.
	TTL time.Duration
}

func NewRedisStorage(addr, prefix string) *RedisStorage {
	return &RedisStorage{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		Prefix: prefix,
	}
}

func (s *RedisStorage) Key(key string) string {
	return s.Prefix + key
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.Client.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	return s.Client.Set(ctx, s.Key(key), data, s.TTL).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, s.Key(key)).Err()
}

func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStorage) Close() error {
	return s.Client.Close()
}
