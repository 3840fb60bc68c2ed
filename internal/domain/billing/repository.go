package billing

import (
	"context"
	"time"
)

// Filter narrows invoice listings
type Filter struct {
	// Bill and Challan are numeric prefix fragments
	Bill    string
	Challan string
	Limit   int
}

// Repository persists invoices
type Repository interface {
	// FindByBillNo finds an invoice by bill number
	FindByBillNo(ctx context.Context, billNo string) (*Invoice, error)

	// FindByBillNos finds all invoices with the given bill numbers
	FindByBillNos(ctx context.Context, billNos []string) ([]Invoice, error)

	// FindAll lists invoices by descending bill sequence, with the challan industry joined
	FindAll(ctx context.Context, filter Filter) ([]Invoice, error)

	// RecentBillNos returns the bill numbers of the most recent invoices
	RecentBillNos(ctx context.Context, limit int) ([]string, error)

	// CompanyBillNos returns recent bill numbers that belong to a company:
	// bills whose challan industry equals company or whose number starts with prefix
	CompanyBillNos(ctx context.Context, company, prefix string, limit int) ([]string, error)

	// Insert stores a new invoice; shared.ErrAlreadyExists when the bill number is taken
	Insert(ctx context.Context, inv *Invoice) error

	// SetPaid updates the paid flag and returns the updated invoice
	SetPaid(ctx context.Context, billNo string, paid bool) (*Invoice, error)

	// SetCreatedAt re-dates the listed invoices and returns them
	SetCreatedAt(ctx context.Context, billNos []string, at time.Time) ([]Invoice, error)
}
