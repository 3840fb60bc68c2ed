// Package quotation implements price quotation use cases.
package quotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zumech/backend/internal/domain/quotation"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/logger"
)

const dateLayout = "2006-01-02"

// Service handles quotation operations
type Service struct {
	repo   quotation.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new quotation Service
func NewService(repo quotation.Repository, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{repo: repo, logger: l, now: time.Now}
}

// Create stores a quotation
func (s *Service) Create(ctx context.Context, req CreateQuotationRequest) (*QuotationResponse, error) {
	var date time.Time
	if strings.TrimSpace(req.QuotationDate) != "" {
		d, err := parseDate(req.QuotationDate, false)
		if err != nil {
			return nil, err
		}
		date = d
	}

	rows := make([]quotation.Row, len(req.Description))
	for i, r := range req.Description {
		rows[i] = quotation.Row{Description: r.Description, Rate: r.Rate, IsNote: r.IsNote}
	}

	q, err := quotation.NewQuotation(req.QuotationNo, req.IndustryName, rows, date, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, q); err != nil {
		return nil, err
	}

	logger.For(ctx, s.logger).Info("Quotation created",
		zap.String("quotation_no", q.QuotationNo),
		zap.String("industry", q.IndustryName),
	)
	resp := ToQuotationResponse(q)
	return &resp, nil
}

// List returns quotations newest first. Date bounds are inclusive; a bare
// To date covers that whole day.
func (s *Service) List(ctx context.Context, req ListQuotationsRequest) ([]QuotationResponse, error) {
	filter := quotation.Filter{
		Quotation: strings.TrimSpace(req.Quotation),
		Industry:  strings.TrimSpace(req.Industry),
		Limit:     req.Limit,
	}
	if strings.TrimSpace(req.From) != "" {
		from, err := parseDate(req.From, false)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if strings.TrimSpace(req.To) != "" {
		to, err := parseDate(req.To, true)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	out := make([]QuotationResponse, len(rows))
	for i := range rows {
		out[i] = ToQuotationResponse(&rows[i])
	}
	return out, nil
}

// Get returns one quotation
func (s *Service) Get(ctx context.Context, id int64) (*quotation.Quotation, error) {
	return s.repo.FindByID(ctx, id)
}

// parseDate accepts YYYY-MM-DD or RFC 3339. endOfDay moves a bare date to
// its last nanosecond.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_INPUT", "dates must be YYYY-MM-DD or ISO timestamps")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
