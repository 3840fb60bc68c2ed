package models

import (
	"github.com/zumech/backend/internal/domain/billing"
)

// InvoiceModel is the persistence model for bills
type InvoiceModel struct {
	BaseModel
	BillNo    string                 `gorm:"column:bill_no;type:varchar(64);not null;uniqueIndex"`
	BillSeq   int64                  `gorm:"column:bill_seq;not null;index"`
	ChallanNo int64                  `gorm:"column:challan_no;not null;index"`
	Lines     JSONList[billing.Line] `gorm:"column:lines;not null"`
	Paid      bool                   `gorm:"column:paid;not null;default:false"`
	// Industry is filled by the challan join and never written
	Industry string `gorm:"column:industry;->;-:migration"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	lines := []billing.Line(m.Lines)
	if lines == nil {
		lines = []billing.Line{}
	}
	return &billing.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		BillNo:     m.BillNo,
		BillSeq:    m.BillSeq,
		ChallanNo:  m.ChallanNo,
		Lines:      lines,
		Paid:       m.Paid,
		Industry:   m.Industry,
	}
}

// FromDomain populates the model from a domain Invoice
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.BillNo = inv.BillNo
	m.BillSeq = inv.BillSeq
	m.ChallanNo = inv.ChallanNo
	m.Lines = JSONList[billing.Line](inv.Lines)
	m.Paid = inv.Paid
}

// InvoiceModelFromDomain creates a new model from a domain Invoice
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}
