package cache

import (
	"context"
	"sync"
	"time"

	"github.com/zumech/backend/internal/domain/challan"
)

// InMemoryCompanyCache implements challan.CompanyCache inside one process.
// Suitable for single-instance deployments and tests: other instances do
// not see its invalidations.
type InMemoryCompanyCache struct {
	mu        sync.RWMutex
	companies []string
	expiresAt time.Time
	now       func() time.Time
}

// NewInMemoryCompanyCache creates an empty cache
func NewInMemoryCompanyCache() *InMemoryCompanyCache {
	return &InMemoryCompanyCache{now: time.Now}
}

// Get returns the cached list while it has not expired
func (c *InMemoryCompanyCache) Get(_ context.Context) ([]string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.companies == nil || !c.now().Before(c.expiresAt) {
		return nil, false, nil
	}
	out := make([]string, len(c.companies))
	copy(out, c.companies)
	return out, true, nil
}

// Set stores a copy of the list for ttl
func (c *InMemoryCompanyCache) Set(_ context.Context, companies []string, ttl time.Duration) error {
	stored := make([]string, len(companies))
	copy(stored, companies)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.companies = stored
	c.expiresAt = c.now().Add(ttl)
	return nil
}

// Invalidate drops the cached list
func (c *InMemoryCompanyCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.companies = nil
	c.expiresAt = time.Time{}
	return nil
}

// Ensure InMemoryCompanyCache implements challan.CompanyCache
var _ challan.CompanyCache = (*InMemoryCompanyCache)(nil)
