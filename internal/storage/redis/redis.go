package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventTicketing/internal/config"
	"eventTicketing/internal/storage"

	"github.com/redis/go-redis/v9"
)

type Storage struct {
	client redis.Cmdable
	closer func() error
}

// Connect opens a pooled client and pings it before returning.
func Connect(cfg *config.Redis) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: 3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{client: client, closer: client.Close}, nil
}

// New wraps an existing client; Close is a no-op.
func New(client redis.Cmdable) *Storage {
	return &Storage{client: client}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("key %q: %w", key, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}

	return blob, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
