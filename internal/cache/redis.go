package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

var ErrNotFound = errors.New("key not found in cache")

// RedisCache wraps redis client with the JSON helpers repositories need
type RedisCache struct {
	client *redis.Client
}

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New returns nil without error when no REDIS_URL is configured; callers
// fall back to the store.
func New(opts Opts) (*RedisCache, error) {
	if opts.Config.Redis.URL == "" {
		opts.Logger.Info("Redis not configured, caching disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(opts.Config.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	c := &RedisCache{client: redis.NewClient(opt)}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := c.client.Ping(ctx).Err(); err != nil {
				opts.Logger.Warn("Redis ping failed, cache reads will miss", "error", err)
				return nil
			}
			opts.Logger.Info("Connected to redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return c.client.Close()
		},
	})

	return c, nil
}

// SetJSON stores a JSON-encoded value in cache
func (r *RedisCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

// GetJSON retrieves and decodes a JSON value from cache
func (r *RedisCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}
