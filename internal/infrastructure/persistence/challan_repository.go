package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/challan"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/persistence/models"
)

// GormChallanRepository implements challan.Repository using GORM
type GormChallanRepository struct {
	db *gorm.DB
}

// NewGormChallanRepository creates a new GormChallanRepository
func NewGormChallanRepository(db *gorm.DB) *GormChallanRepository {
	return &GormChallanRepository{db: db}
}

// FindByID finds a challan by row id
func (r *GormChallanRepository) FindByID(ctx context.Context, id int64) (*challan.Challan, error) {
	var model models.ChallanModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, translateError(err, challan.ErrChallanNotFound)
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a challan by challan number
func (r *GormChallanRepository) FindByNumber(ctx context.Context, challanNo int64) (*challan.Challan, error) {
	var model models.ChallanModel
	if err := r.db.WithContext(ctx).Where("challan_no = ?", challanNo).Take(&model).Error; err != nil {
		return nil, translateError(err, challan.ErrChallanNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll lists challans matching the filter, newest first
func (r *GormChallanRepository) FindAll(ctx context.Context, filter challan.Filter) ([]challan.Challan, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ChallanModel{}), filter)

	var rows []models.ChallanModel
	err := query.
		Order("created_at DESC").
		Order("challan_no DESC").
		Limit(shared.ClampLimit(filter.Limit, shared.DefaultListLimit, shared.MaxListLimit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]challan.Challan, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

func (r *GormChallanRepository) applyFilter(query *gorm.DB, filter challan.Filter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	if lo, hi, ok := shared.NumericPrefixRange(filter.Challan); ok {
		if filter.Exact {
			query = query.Where("challan_no = ?", lo)
		} else {
			query = query.Where("((challan_no >= ? AND challan_no < ?) OR challan_no = ?)", lo, hi, lo)
		}
	}

	if filter.Industry != "" {
		query = query.Where(`LOWER(industry) LIKE ? ESCAPE '\'`, containsPattern(filter.Industry))
	}

	if filter.Item != "" {
		query = query.Where(r.itemClause(), containsPattern(filter.Item))
	}

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}
	return query
}

// itemClause matches any line item description
func (r *GormChallanRepository) itemClause() string {
	if isSQLite(r.db) {
		return `EXISTS (SELECT 1 FROM json_each(challans.items) AS e WHERE LOWER(json_extract(e.value, '$.description')) LIKE ? ESCAPE '\')`
	}
	return `EXISTS (SELECT 1 FROM jsonb_array_elements(challans.items) AS e WHERE LOWER(e->>'description') LIKE ? ESCAPE '\')`
}

// MaxNumber returns the highest challan number, 0 for an empty table
func (r *GormChallanRepository) MaxNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&models.ChallanModel{}).
		Select("COALESCE(MAX(challan_no), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Insert stores a new challan. Returns shared.ErrAlreadyExists when the
// challan number is taken.
func (r *GormChallanRepository) Insert(ctx context.Context, c *challan.Challan) error {
	model := models.ChallanModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, challan.ErrChallanNotFound)
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	return nil
}

// Update overwrites the editable content of an existing challan
func (r *GormChallanRepository) Update(ctx context.Context, c *challan.Challan) error {
	model := models.ChallanModelFromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&models.ChallanModel{}).
		Where("id = ?", c.ID).
		Select("date", "po", "gp", "industry", "items", "sample_returned").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error, challan.ErrChallanNotFound)
	}
	if result.RowsAffected == 0 {
		return challan.ErrChallanNotFound
	}
	return nil
}

// Industries returns industry values of up to limit challans
func (r *GormChallanRepository) Industries(ctx context.Context, limit int) ([]string, error) {
	var industries []string
	err := r.db.WithContext(ctx).
		Model(&models.ChallanModel{}).
		Order("industry ASC").
		Limit(limit).
		Pluck("industry", &industries).Error
	if err != nil {
		return nil, err
	}
	return industries, nil
}

// Ensure GormChallanRepository implements challan.Repository
var _ challan.Repository = (*GormChallanRepository)(nil)
