// Package challan implements the delivery challan use cases: numbered
// creation, edits, listings and the company directory.
package challan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

// Service handles challan operations
type Service struct {
	repo    challan.Repository
	cache   challan.CompanyCache
	metrics *telemetry.BusinessMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithCompanyCache caches the company list
func WithCompanyCache(cache challan.CompanyCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new challan Service
func NewService(repo challan.Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBusinessMetrics sets the business metrics collector
func (s *Service) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.metrics = bm
}

// Create stores a new challan under the next free number. A concurrent
// writer taking the same number makes the insert fail; the maximum is then
// re-read and the next number tried.
func (s *Service) Create(ctx context.Context, req CreateChallanRequest) (*SavedChallanResponse, error) {
	c, err := challan.NewChallan(req.details(), s.now())
	if err != nil {
		return nil, err
	}

	log := logger.For(ctx, s.logger)
	for attempt := 1; attempt <= challan.MaxAllocationAttempts; attempt++ {
		max, err := s.repo.MaxNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read latest challan number: %w", err)
		}
		c.ChallanNo = max + 1

		err = s.repo.Insert(ctx, c)
		if err == nil {
			s.metrics.RecordNumberAllocated(ctx, telemetry.DocumentKindChallan, attempt)
			s.invalidateCompanies(ctx)
			log.Info("Challan created",
				zap.Int64("challan_no", c.ChallanNo),
				zap.String("industry", c.Industry),
				zap.Int("attempt", attempt),
			)
			return &SavedChallanResponse{Data: ToChallanResponse(c), Challan: c.Number()}, nil
		}
		if !errors.Is(err, shared.ErrAlreadyExists) {
			return nil, fmt.Errorf("failed to insert challan: %w", err)
		}
		log.Warn("Challan number taken, retrying",
			zap.Int64("challan_no", c.ChallanNo),
			zap.Int("attempt", attempt),
		)
	}
	return nil, challan.ErrAllocationExhausted
}

// Update replaces the content of an existing challan. The challan number
// never changes.
func (s *Service) Update(ctx context.Context, req UpdateChallanRequest) (*SavedChallanResponse, error) {
	ref := challan.Ref{ID: req.ID, ChallanNo: req.ChallanNo}
	if ref.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "id or challanno is required")
	}

	c, err := s.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(req.details(), s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateCompanies(ctx)

	logger.For(ctx, s.logger).Info("Challan updated", zap.Int64("challan_no", c.ChallanNo))
	return &SavedChallanResponse{Data: ToChallanResponse(c), Challan: c.Number()}, nil
}

func (s *Service) find(ctx context.Context, ref challan.Ref) (*challan.Challan, error) {
	if ref.ID != 0 {
		return s.repo.FindByID(ctx, ref.ID)
	}
	return s.repo.FindByNumber(ctx, ref.ChallanNo)
}

// Get returns a challan by row id
func (s *Service) Get(ctx context.Context, id int64) (*challan.Challan, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByNumber returns a challan by challan number
func (s *Service) GetByNumber(ctx context.Context, challanNo int64) (*challan.Challan, error) {
	return s.repo.FindByNumber(ctx, challanNo)
}

// List returns challans matching the query, newest first
func (s *Service) List(ctx context.Context, req ListChallansRequest) ([]ChallanResponse, error) {
	rows, err := s.repo.FindAll(ctx, req.filter())
	if err != nil {
		return nil, fmt.Errorf("failed to list challans: %w", err)
	}
	out := make([]ChallanResponse, len(rows))
	for i := range rows {
		out[i] = ToChallanResponse(&rows[i])
	}
	return out, nil
}

// Companies returns the distinct company names used on challans
func (s *Service) Companies(ctx context.Context) ([]string, error) {
	log := logger.For(ctx, s.logger)
	if s.cache != nil {
		companies, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Warn("Company cache read failed", zap.Error(err))
		} else if ok {
			return companies, nil
		}
	}

	industries, err := s.repo.Industries(ctx, challan.CompaniesScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	companies := challan.DistinctCompanies(industries)

	if s.cache != nil {
		if err := s.cache.Set(ctx, companies, challan.CompaniesTTL); err != nil {
			log.Warn("Company cache write failed", zap.Error(err))
		}
	}
	return companies, nil
}

func (s *Service) invalidateCompanies(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.For(ctx, s.logger).Warn("Company cache invalidation failed", zap.Error(err))
	}
}
