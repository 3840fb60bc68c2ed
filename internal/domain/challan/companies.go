package challan

import (
	"context"
	"sort"
	"strings"
	"time"
)

// CompaniesScanLimit caps how many challans are read to build the company list
const CompaniesScanLimit = 2000

// CompaniesTTL is how long a computed company list stays cached
const CompaniesTTL = 10 * time.Minute

// CompanyCache holds the distinct company list between challan writes.
// Implementations live in infrastructure (redis, in-memory).
type CompanyCache interface {
	// Get returns the cached list; ok is false on a miss
	Get(ctx context.Context) (companies []string, ok bool, err error)

	// Set stores the list for ttl
	Set(ctx context.Context, companies []string, ttl time.Duration) error

	// Invalidate drops the cached list
	Invalidate(ctx context.Context) error
}

// DistinctCompanies trims, de-duplicates and sorts industry names,
// dropping blanks.
func DistinctCompanies(industries []string) []string {
	seen := make(map[string]struct{}, len(industries))
	out := make([]string, 0, len(industries))
	for _, raw := range industries {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
