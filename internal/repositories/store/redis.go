package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the aggregate is stored under
const DefaultRedisKey = "matchqueue:store"

// RedisConfig holds configuration for the Redis store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Key overrides DefaultRedisKey
	Key string
}

// redisRepository implements the Repository interface using a single Redis string
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

// Load reads the aggregate from Redis
func (r *redisRepository) Load(ctx context.Context) (*models.Store, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return decode(data)
}

// Save writes the aggregate to Redis in a single SET
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	data, err := encode(input)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	return nil
}
