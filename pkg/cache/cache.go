package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	keyPrefix = "animated-nav:"
)

var (
	ErrDisabled = errors.New("cache disabled")
	ErrNotFound = errors.New("key not found")
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

// Disabled returns a cache on which every read misses and every write is a no-op.
func Disabled() *Cache {
	return &Cache{enabled: false}
}

func NewCache(ctx context.Context, addr string, enable bool) (*Cache, error) {
	if !enable {
		return Disabled(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultOperationTimeout)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

func (c *Cache) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultOperationTimeout)
}

// GetString returns the raw value stored under key.
func (c *Cache) GetString(ctx context.Context, key string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) SetString(ctx context.Context, key, value string, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	return c.client.Set(ctx, keyPrefix+key, value, expiration).Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
