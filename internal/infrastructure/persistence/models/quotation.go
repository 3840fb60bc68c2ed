package models

import (
	"time"

	"github.com/zumech/backend/internal/domain/quotation"
)

// QuotationModel is the persistence model for quotations
type QuotationModel struct {
	BaseModel
	QuotationNo   string                  `gorm:"column:quotation_no;type:varchar(100);not null;index"`
	IndustryName  string                  `gorm:"column:industry_name;type:varchar(255);not null"`
	Rows          JSONList[quotation.Row] `gorm:"column:rows;not null"`
	QuotationDate time.Time               `gorm:"column:quotation_date;not null;index"`
}

// TableName returns the table name for GORM
func (QuotationModel) TableName() string {
	return "quotations"
}

// ToDomain converts the model to a domain Quotation
func (m *QuotationModel) ToDomain() *quotation.Quotation {
	rows := []quotation.Row(m.Rows)
	if rows == nil {
		rows = []quotation.Row{}
	}
	return &quotation.Quotation{
		BaseEntity:    m.BaseModel.ToDomain(),
		QuotationNo:   m.QuotationNo,
		IndustryName:  m.IndustryName,
		Rows:          rows,
		QuotationDate: m.QuotationDate,
	}
}

// FromDomain populates the model from a domain Quotation
func (m *QuotationModel) FromDomain(q *quotation.Quotation) {
	m.FromDomainBaseEntity(q.BaseEntity)
	m.QuotationNo = q.QuotationNo
	m.IndustryName = q.IndustryName
	m.Rows = JSONList[quotation.Row](q.Rows)
	m.QuotationDate = q.QuotationDate
}
