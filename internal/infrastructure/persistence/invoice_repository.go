package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/billing"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/persistence/models"
)

// ErrInvoiceNotFound is returned when a bill number does not exist
var ErrInvoiceNotFound = shared.NewDomainError("NOT_FOUND", "Invoice not found")

// GormInvoiceRepository implements billing.Repository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// withIndustry selects invoices with the linked challan's industry
func (r *GormInvoiceRepository) withIndustry(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("invoices.*, challans.industry AS industry").
		Joins("LEFT JOIN challans ON challans.challan_no = invoices.challan_no")
}

// FindByBillNo finds an invoice by bill number
func (r *GormInvoiceRepository) FindByBillNo(ctx context.Context, billNo string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.withIndustry(ctx).Where("invoices.bill_no = ?", billNo).Take(&model).Error; err != nil {
		return nil, translateError(err, ErrInvoiceNotFound)
	}
	return model.ToDomain(), nil
}

// FindByBillNos finds all invoices with the given bill numbers
func (r *GormInvoiceRepository) FindByBillNos(ctx context.Context, billNos []string) ([]billing.Invoice, error) {
	if len(billNos) == 0 {
		return []billing.Invoice{}, nil
	}
	var rows []models.InvoiceModel
	err := r.withIndustry(ctx).
		Where("invoices.bill_no IN ?", billNos).
		Order("invoices.bill_seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toInvoices(rows), nil
}

// FindAll lists invoices by descending bill sequence
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter billing.Filter) ([]billing.Invoice, error) {
	query := r.withIndustry(ctx)
	if lo, hi, ok := shared.NumericPrefixRange(filter.Bill); ok {
		query = query.Where("invoices.bill_seq >= ? AND invoices.bill_seq < ?", lo, hi)
	}
	if lo, hi, ok := shared.NumericPrefixRange(filter.Challan); ok {
		query = query.Where("invoices.challan_no >= ? AND invoices.challan_no < ?", lo, hi)
	}

	var rows []models.InvoiceModel
	err := query.
		Order("invoices.bill_seq DESC").
		Order("invoices.bill_no DESC").
		Limit(shared.ClampLimit(filter.Limit, shared.DefaultListLimit, shared.MaxListLimit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toInvoices(rows), nil
}

// RecentBillNos returns the bill numbers with the highest sequences
func (r *GormInvoiceRepository) RecentBillNos(ctx context.Context, limit int) ([]string, error) {
	var billNos []string
	err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Order("bill_seq DESC").
		Limit(limit).
		Pluck("bill_no", &billNos).Error
	if err != nil {
		return nil, err
	}
	return billNos, nil
}

// CompanyBillNos returns recent bill numbers belonging to company
func (r *GormInvoiceRepository) CompanyBillNos(ctx context.Context, company, prefix string, limit int) ([]string, error) {
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Joins("LEFT JOIN challans ON challans.challan_no = invoices.challan_no")
	if prefix != "" {
		query = query.Where(`(challans.industry = ? OR UPPER(invoices.bill_no) LIKE ? ESCAPE '\')`,
			company, likeEscaper.Replace(prefix)+"%")
	} else {
		query = query.Where("challans.industry = ?", company)
	}

	var billNos []string
	err := query.
		Order("invoices.created_at DESC").
		Order("invoices.bill_seq DESC").
		Limit(limit).
		Pluck("invoices.bill_no", &billNos).Error
	if err != nil {
		return nil, err
	}
	return billNos, nil
}

// Insert stores a new invoice
func (r *GormInvoiceRepository) Insert(ctx context.Context, inv *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(inv)
	if err := r.db.WithContext(ctx).Omit("industry").Create(model).Error; err != nil {
		return translateError(err, ErrInvoiceNotFound)
	}
	inv.ID = model.ID
	inv.CreatedAt = model.CreatedAt
	return nil
}

// SetPaid updates the paid flag of one invoice
func (r *GormInvoiceRepository) SetPaid(ctx context.Context, billNo string, paid bool) (*billing.Invoice, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("bill_no = ?", billNo).
		Update("paid", paid)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvoiceNotFound
	}
	return r.FindByBillNo(ctx, billNo)
}

// SetCreatedAt re-dates the listed invoices
func (r *GormInvoiceRepository) SetCreatedAt(ctx context.Context, billNos []string, at time.Time) ([]billing.Invoice, error) {
	err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("bill_no IN ?", billNos).
		Update("created_at", at).Error
	if err != nil {
		return nil, err
	}
	return r.FindByBillNos(ctx, billNos)
}

func toInvoices(rows []models.InvoiceModel) []billing.Invoice {
	out := make([]billing.Invoice, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormInvoiceRepository implements billing.Repository
var _ billing.Repository = (*GormInvoiceRepository)(nil)
