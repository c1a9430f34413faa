package progress

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/block-cats/internal/errors"
	redisclient "github.com/KirkDiggler/block-cats/internal/redis"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisStore struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for progress blobs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &blobRepository{
		store: &redisStore{client: cfg.Client},
	}, nil
}

func (s *redisStore) get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("%s not found", key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read from Redis")
	}
	return data, nil
}

func (s *redisStore) set(ctx context.Context, key string, data []byte) error {
	// progress never expires
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write to Redis")
	}
	return nil
}
