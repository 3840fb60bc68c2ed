package models

import (
	"github.com/zumech/backend/internal/domain/gatepass"
)

// ExtractionModel is the persistence model for gate-pass extractions
type ExtractionModel struct {
	BaseModel
	DocumentNo   *string                 `gorm:"column:document_no;type:varchar(100);index"`
	DocumentDate *string                 `gorm:"column:document_date;type:varchar(32)"`
	Items        JSONList[gatepass.Item] `gorm:"column:items;not null"`
	RawText      string                  `gorm:"column:raw_text;type:text"`
	URL          *string                 `gorm:"column:url;type:text"`
}

// TableName returns the table name for GORM
func (ExtractionModel) TableName() string {
	return "document_extractions"
}

// ToDomain converts the model to a domain Extraction
func (m *ExtractionModel) ToDomain() *gatepass.Extraction {
	items := []gatepass.Item(m.Items)
	if items == nil {
		items = []gatepass.Item{}
	}
	return &gatepass.Extraction{
		BaseEntity:   m.BaseModel.ToDomain(),
		DocumentNo:   m.DocumentNo,
		DocumentDate: m.DocumentDate,
		Items:        items,
		RawText:      m.RawText,
		URL:          m.URL,
	}
}

// FromDomain populates the model from a domain Extraction
func (m *ExtractionModel) FromDomain(e *gatepass.Extraction) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.DocumentNo = e.DocumentNo
	m.DocumentDate = e.DocumentDate
	m.Items = JSONList[gatepass.Item](e.Items)
	m.RawText = e.RawText
	m.URL = e.URL
}
