package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/quotation"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/persistence/models"
)

// ErrQuotationNotFound is returned when a quotation does not exist
var ErrQuotationNotFound = shared.NewDomainError("NOT_FOUND", "Quotation not found")

// GormQuotationRepository implements quotation.Repository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// FindByID finds a quotation by id
func (r *GormQuotationRepository) FindByID(ctx context.Context, id int64) (*quotation.Quotation, error) {
	var model models.QuotationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, translateError(err, ErrQuotationNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll lists quotations newest first
func (r *GormQuotationRepository) FindAll(ctx context.Context, filter quotation.Filter) ([]quotation.Quotation, error) {
	query := r.db.WithContext(ctx).Model(&models.QuotationModel{})
	if filter.Quotation != "" {
		query = query.Where(`LOWER(quotation_no) LIKE ? ESCAPE '\'`, containsPattern(filter.Quotation))
	}
	if filter.Industry != "" {
		query = query.Where(`LOWER(industry_name) LIKE ? ESCAPE '\'`, containsPattern(filter.Industry))
	}
	if filter.From != nil {
		query = query.Where("quotation_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("quotation_date <= ?", *filter.To)
	}

	var rows []models.QuotationModel
	err := query.
		Order("created_at DESC").
		Limit(shared.ClampLimit(filter.Limit, shared.DefaultListLimit, shared.MaxListLimit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]quotation.Quotation, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Insert stores a new quotation
func (r *GormQuotationRepository) Insert(ctx context.Context, q *quotation.Quotation) error {
	model := &models.QuotationModel{}
	model.FromDomain(q)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, ErrQuotationNotFound)
	}
	q.ID = model.ID
	q.CreatedAt = model.CreatedAt
	return nil
}

// Ensure GormQuotationRepository implements quotation.Repository
var _ quotation.Repository = (*GormQuotationRepository)(nil)
