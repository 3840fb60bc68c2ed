package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/infrastructure/config"
)

func TestInMemoryCompanyCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewInMemoryCompanyCache()
	c.now = func() time.Time { return now }

	t.Run("miss when empty", func(t *testing.T) {
		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("hit until expiry", func(t *testing.T) {
		companies := []string{"Kassim Textile Mills Limited", "Meko Demam Mills"}
		require.NoError(t, c.Set(ctx, companies, 10*time.Minute))
		companies[0] = "mutated"

		got, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"Kassim Textile Mills Limited", "Meko Demam Mills"}, got)

		now = now.Add(10 * time.Minute)
		_, ok, _ = c.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("empty list is a hit", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, []string{}, time.Minute))
		got, ok, _ := c.Get(ctx)
		assert.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("invalidate", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, []string{"A"}, time.Minute))
		require.NoError(t, c.Invalidate(ctx))
		_, ok, _ := c.Get(ctx)
		assert.False(t, ok)
	})
}

func TestFactory_CompanyCache(t *testing.T) {
	t.Run("redis disabled", func(t *testing.T) {
		cache, client := NewFactory(config.RedisConfig{}).CompanyCache()
		assert.IsType(t, &InMemoryCompanyCache{}, cache)
		assert.Nil(t, client)
	})

	t.Run("redis unreachable falls back", func(t *testing.T) {
		cache, client := NewFactory(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}).CompanyCache()
		assert.IsType(t, &InMemoryCompanyCache{}, cache)
		assert.Nil(t, client)
	})
}
