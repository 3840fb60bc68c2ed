// Package billing implements bill (invoice) use cases: numbered creation
// against a challan, payment status, re-dating and per-company numbering.
package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zumech/backend/internal/domain/billing"
	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

// Service handles bill operations
type Service struct {
	invoices billing.Repository
	challans challan.Repository
	metrics  *telemetry.BusinessMetrics
	logger   *zap.Logger
}

// NewService creates a new billing Service
func NewService(invoices billing.Repository, challans challan.Repository, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{
		invoices: invoices,
		challans: challans,
		logger:   l,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *Service) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.metrics = bm
}

// Create prices the lines and stores a bill for an existing challan.
// Without a requested number the next global number is used; a requested
// number is tried as is and then bumped on collision.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*CreatedInvoiceResponse, error) {
	if req.ChallanNo == 0 || req.Lines == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "challanno and lines[] are required")
	}
	if _, err := s.challans.FindByNumber(ctx, req.ChallanNo); err != nil {
		return nil, err
	}

	requested := strings.TrimSpace(req.BillNo)
	var base int64 = 1
	if requested == "" {
		recent, err := s.invoices.RecentBillNos(ctx, billing.RecentWindow)
		if err != nil {
			return nil, fmt.Errorf("failed to read recent bill numbers: %w", err)
		}
		base = billing.NextSequence(recent)
	}

	inv := billing.NewInvoice(req.ChallanNo, req.lineInputs())
	log := logger.For(ctx, s.logger)
	for attempt := 0; attempt < billing.MaxAllocationAttempts; attempt++ {
		inv.AssignNumber(billing.Candidate(requested, base, attempt))

		err := s.invoices.Insert(ctx, inv)
		if err == nil {
			s.metrics.RecordNumberAllocated(ctx, telemetry.DocumentKindInvoice, attempt+1)
			log.Info("Bill created",
				zap.String("bill_no", inv.BillNo),
				zap.Int64("challan_no", inv.ChallanNo),
				zap.String("total", inv.Total().StringFixed(2)),
			)
			return &CreatedInvoiceResponse{Data: ToInvoiceResponse(inv), Bill: inv.BillNo}, nil
		}
		if !errors.Is(err, shared.ErrAlreadyExists) {
			return nil, fmt.Errorf("failed to insert bill: %w", err)
		}
		log.Warn("Bill number taken, retrying",
			zap.String("bill_no", inv.BillNo),
			zap.Int("attempt", attempt+1),
		)
	}
	return nil, billing.ErrAllocationExhausted
}

// SetPaid marks a bill paid or unpaid
func (s *Service) SetPaid(ctx context.Context, req SetPaidRequest) (*InvoiceResponse, error) {
	if req.Status == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "status (boolean) is required")
	}
	billNo := strings.TrimSpace(req.BillNo)
	if billNo == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "billno is required")
	}

	inv, err := s.invoices.SetPaid(ctx, billNo, *req.Status)
	if err != nil {
		return nil, err
	}
	logger.For(ctx, s.logger).Info("Bill status changed",
		zap.String("bill_no", billNo),
		zap.Bool("paid", *req.Status),
	)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// SetDate re-dates the listed bills
func (s *Service) SetDate(ctx context.Context, req SetDateRequest) ([]InvoiceResponse, error) {
	billNos := cleanBillNos(req.BillNos)
	if len(billNos) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "billnos[] is required")
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "date is required")
	}
	at, err := parseBillDate(req.Date)
	if err != nil {
		return nil, err
	}

	rows, err := s.invoices.SetCreatedAt(ctx, billNos, at)
	if err != nil {
		return nil, fmt.Errorf("failed to update bill dates: %w", err)
	}
	return toInvoiceResponses(rows), nil
}

func parseBillDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, shared.NewDomainError("INVALID_INPUT", "date must be YYYY-MM-DD or an ISO timestamp")
}

// List returns bills by descending number
func (s *Service) List(ctx context.Context, req ListInvoicesRequest) ([]InvoiceResponse, error) {
	rows, err := s.invoices.FindAll(ctx, billing.Filter{
		Bill:    req.Bill,
		Challan: req.Challan,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return toInvoiceResponses(rows), nil
}

// Get returns one bill
func (s *Service) Get(ctx context.Context, billNo string) (*billing.Invoice, error) {
	return s.invoices.FindByBillNo(ctx, strings.TrimSpace(billNo))
}

// GetMany returns the listed bills that exist, by ascending sequence
func (s *Service) GetMany(ctx context.Context, billNos []string) ([]billing.Invoice, error) {
	billNos = cleanBillNos(billNos)
	if len(billNos) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "billnos[] is required")
	}
	rows, err := s.invoices.FindByBillNos(ctx, billNos)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	if len(rows) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No matching bills found")
	}
	return rows, nil
}

// NextBillNumber suggests the next per-company bill number, such as
// "KTML-0013" for Kassim Textile Mills Limited.
func (s *Service) NextBillNumber(ctx context.Context, company string) (*NextNumberResponse, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "company is required")
	}

	prefix := billing.Initials(company)
	billNos, err := s.invoices.CompanyBillNos(ctx, company, prefix, billing.CompanyWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to read company bill numbers: %w", err)
	}

	var last int64
	for _, b := range billNos {
		if n, ok := billing.CompanySequence(b); ok && n > last {
			last = n
		}
	}
	return &NextNumberResponse{
		Company: company,
		BillNo:  billing.CompanyBillNumber(company, last),
	}, nil
}
