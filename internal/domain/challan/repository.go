package challan

import (
	"context"

	"github.com/zumech/backend/internal/domain/shared"
)

// Filter narrows challan listings. Zero values are ignored.
type Filter struct {
	ID *int64
	// Challan is a user-typed number fragment; non-digits are ignored
	Challan string
	// Exact matches Challan as a whole number instead of a prefix
	Exact    bool
	Industry string
	// Item matches against line item descriptions
	Item  string
	From  string
	To    string
	Limit int
}

// Ref identifies a challan either by row id or by challan number
type Ref struct {
	ID        int64
	ChallanNo int64
}

// IsZero reports whether neither identifier is set
func (r Ref) IsZero() bool {
	return r.ID == 0 && r.ChallanNo == 0
}

// Repository persists challans
type Repository interface {
	// FindByID finds a challan by row id
	FindByID(ctx context.Context, id int64) (*Challan, error)

	// FindByNumber finds a challan by its challan number
	FindByNumber(ctx context.Context, challanNo int64) (*Challan, error)

	// FindAll lists challans newest first
	FindAll(ctx context.Context, filter Filter) ([]Challan, error)

	// MaxNumber returns the highest allocated challan number, 0 when none
	MaxNumber(ctx context.Context) (int64, error)

	// Insert stores a new challan with c.ChallanNo already set.
	// Returns shared.ErrAlreadyExists when the number is taken.
	Insert(ctx context.Context, c *Challan) error

	// Update overwrites the content of an existing challan
	Update(ctx context.Context, c *Challan) error

	// Industries returns raw industry values of up to limit challans
	Industries(ctx context.Context, limit int) ([]string, error)
}

// ErrChallanNotFound is returned when a referenced challan does not exist
var ErrChallanNotFound = shared.NewDomainError("NOT_FOUND", "Challan not found")

// MaxAllocationAttempts bounds how many challan numbers are tried before giving up
const MaxAllocationAttempts = 5

// ErrAllocationExhausted is returned when every allocation attempt collided
var ErrAllocationExhausted = shared.NewDomainError("CONFLICT", "Could not allocate a unique challan number. Please retry.")
