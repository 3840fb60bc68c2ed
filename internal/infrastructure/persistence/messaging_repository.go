package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/messaging"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/persistence/models"
)

// GormContactRepository implements messaging.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindAll lists contacts by descending id
func (r *GormContactRepository) FindAll(ctx context.Context) ([]messaging.Contact, error) {
	var rows []models.ContactModel
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]messaging.Contact, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Insert stores a new contact
func (r *GormContactRepository) Insert(ctx context.Context, c *messaging.Contact) error {
	model := &models.ContactModel{}
	model.FromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, shared.ErrNotFound)
	}
	c.ID = model.ID
	return nil
}

// GormMessageRepository implements messaging.MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// FindAll lists messages ordered by creation time
func (r *GormMessageRepository) FindAll(ctx context.Context, filter messaging.MessageFilter) ([]messaging.Message, error) {
	query := r.db.WithContext(ctx).Model(&models.MessageModel{})
	if filter.ContactID != "" {
		query = query.Where("contact_id = ?", filter.ContactID)
	}

	var rows []models.MessageModel
	err := query.
		Order("created_at " + SortOrder(filter.Ascending)).
		Order("id " + SortOrder(filter.Ascending)).
		Limit(shared.ClampLimit(filter.Limit, messaging.DefaultMessageLimit, messaging.DefaultMessageLimit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]messaging.Message, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Insert stores a new message
func (r *GormMessageRepository) Insert(ctx context.Context, m *messaging.Message) error {
	model := &models.MessageModel{}
	model.FromDomain(m)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, shared.ErrNotFound)
	}
	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	return nil
}

// MarkRead flags every unread message of a contact as read
func (r *GormMessageRepository) MarkRead(ctx context.Context, contactID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("contact_id = ? AND read = ?", contactID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var (
	_ messaging.ContactRepository = (*GormContactRepository)(nil)
	_ messaging.MessageRepository = (*GormMessageRepository)(nil)
)
