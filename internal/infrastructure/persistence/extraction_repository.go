package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/gatepass"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/persistence/models"
)

// GormExtractionRepository implements gatepass.Repository using GORM
type GormExtractionRepository struct {
	db *gorm.DB
}

// NewGormExtractionRepository creates a new GormExtractionRepository
func NewGormExtractionRepository(db *gorm.DB) *GormExtractionRepository {
	return &GormExtractionRepository{db: db}
}

// Insert stores an extraction
func (r *GormExtractionRepository) Insert(ctx context.Context, e *gatepass.Extraction) error {
	model := &models.ExtractionModel{}
	model.FromDomain(e)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, shared.ErrNotFound)
	}
	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	return nil
}

// FindByDocumentPrefix lists extractions whose document number starts with prefix
func (r *GormExtractionRepository) FindByDocumentPrefix(ctx context.Context, prefix string, limit int) ([]gatepass.Extraction, error) {
	query := r.db.WithContext(ctx).Model(&models.ExtractionModel{})
	if prefix != "" {
		query = query.Where(`LOWER(document_no) LIKE ? ESCAPE '\'`, prefixPattern(prefix))
	}

	var rows []models.ExtractionModel
	err := query.
		Order("created_at DESC").
		Limit(shared.ClampLimit(limit, gatepass.DefaultListLimit, shared.MaxListLimit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]gatepass.Extraction, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Ensure GormExtractionRepository implements gatepass.Repository
var _ gatepass.Repository = (*GormExtractionRepository)(nil)
