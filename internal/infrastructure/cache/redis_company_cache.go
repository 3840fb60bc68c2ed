// Package cache holds the company-list caches: Redis for shared deployments
// and an in-process fallback.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/infrastructure/config"
)

const defaultKeyPrefix = "zumech:"

// companiesKey holds the JSON encoded company list
const companiesKey = "challan:companies"

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisCompanyCache implements challan.CompanyCache on Redis so every
// instance sees the same list and invalidations
type RedisCompanyCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCompanyCache creates a cache on an existing client.
// The caller keeps ownership of the client.
func NewRedisCompanyCache(client *redis.Client, keyPrefix string) *RedisCompanyCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisCompanyCache{client: client, keyPrefix: keyPrefix}
}

func (c *RedisCompanyCache) key() string {
	return c.keyPrefix + companiesKey
}

// Get returns the cached list; ok is false on a miss
func (c *RedisCompanyCache) Get(ctx context.Context) ([]string, bool, error) {
	data, err := c.client.Get(ctx, c.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read companies: %w", err)
	}

	var companies []string
	if err := json.Unmarshal(data, &companies); err != nil {
		// a corrupt entry is a miss; the next Set overwrites it
		return nil, false, nil
	}
	return companies, true, nil
}

// Set stores the list for ttl
func (c *RedisCompanyCache) Set(ctx context.Context, companies []string, ttl time.Duration) error {
	data, err := json.Marshal(companies)
	if err != nil {
		return fmt.Errorf("failed to encode companies: %w", err)
	}
	if err := c.client.Set(ctx, c.key(), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store companies: %w", err)
	}
	return nil
}

// Invalidate drops the cached list
func (c *RedisCompanyCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key()).Err(); err != nil {
		return fmt.Errorf("failed to invalidate companies: %w", err)
	}
	return nil
}

// Ensure RedisCompanyCache implements challan.CompanyCache
var _ challan.CompanyCache = (*RedisCompanyCache)(nil)
