// Package quotation models price quotations sent to customer mills.
package quotation

import (
	"context"
	"strings"
	"time"

	"github.com/zumech/backend/internal/domain/shared"
)

// Row is one quotation line. Note rows carry free text and no rate.
type Row struct {
	Description string `json:"description"`
	Rate        string `json:"rate"`
	IsNote      bool   `json:"isNote"`
}

// Quotation is a priced offer to a company
type Quotation struct {
	shared.BaseEntity
	QuotationNo   string
	IndustryName  string
	Rows          []Row
	QuotationDate time.Time
}

// NewQuotation validates and builds a quotation. A zero date means now.
func NewQuotation(no, industry string, rows []Row, date time.Time, now time.Time) (*Quotation, error) {
	no = strings.TrimSpace(no)
	industry = strings.TrimSpace(industry)
	if no == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "quotation_no is required")
	}
	if industry == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "industry_name is required")
	}
	if date.IsZero() {
		date = now
	}

	kept := make([]Row, 0, len(rows))
	for _, r := range rows {
		r.Description = strings.TrimSpace(r.Description)
		r.Rate = strings.TrimSpace(r.Rate)
		if r.Description == "" && r.Rate == "" {
			continue
		}
		if r.IsNote {
			r.Rate = ""
		}
		kept = append(kept, r)
	}

	return &Quotation{
		QuotationNo:   no,
		IndustryName:  industry,
		Rows:          kept,
		QuotationDate: date,
	}, nil
}

// PricedRows returns the rows that are not notes
func (q *Quotation) PricedRows() []Row {
	out := make([]Row, 0, len(q.Rows))
	for _, r := range q.Rows {
		if !r.IsNote {
			out = append(out, r)
		}
	}
	return out
}

// Filter narrows quotation listings
type Filter struct {
	Quotation string
	Industry  string
	From      *time.Time
	To        *time.Time
	Limit     int
}

// Repository persists quotations
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Quotation, error)
	FindAll(ctx context.Context, filter Filter) ([]Quotation, error)
	Insert(ctx context.Context, q *Quotation) error
}
