package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client and verifies it with PING.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Printf("[Redis] connected addr=%s db=%d", addr, db)
	return rdb, nil
}

// RedisRepository stores the document as JSON under a single key. A zero TTL
// keeps it until cleared.
type RedisRepository[T any] struct {
	rdb redis.Cmdable
	key string
	ttl time.Duration
}

func NewRedisRepository[T any](rdb redis.Cmdable, key string, ttl time.Duration) *RedisRepository[T] {
	return &RedisRepository[T]{rdb: rdb, key: key, ttl: ttl}
}

func (s *RedisRepository[T]) Load(ctx context.Context) (*T, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: redis key %s: %v", ErrCorrupt, s.key, err)
	}
	return &v, nil
}

func (s *RedisRepository[T]) Save(ctx context.Context, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, raw, s.ttl).Err()
}

func (s *RedisRepository[T]) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key).Err()
}
