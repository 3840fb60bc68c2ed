package cache

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/infrastructure/config"
)

// Factory creates the company cache based on configuration
type Factory struct {
	redisConfig config.RedisConfig
	logger      *zap.Logger
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory creates a new factory
func NewFactory(cfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		redisConfig: cfg,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CompanyCache returns a Redis backed cache when Redis is enabled and
// reachable, otherwise an in-memory one. The returned client is nil unless
// Redis is used; the caller closes it on shutdown.
func (f *Factory) CompanyCache() (challan.CompanyCache, *redis.Client) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory company cache")
		return NewInMemoryCompanyCache(), nil
	}

	client, err := NewRedisClient(f.redisConfig)
	if err != nil {
		f.logger.Warn("Redis unavailable, falling back to in-memory company cache. "+
			"Other instances will not see cache invalidations.",
			zap.String("addr", f.redisConfig.Addr()),
			zap.Error(err),
		)
		return NewInMemoryCompanyCache(), nil
	}

	f.logger.Info("Using Redis company cache", zap.String("addr", f.redisConfig.Addr()))
	return NewRedisCompanyCache(client, defaultKeyPrefix), client
}
