package models

import (
	"github.com/zumech/backend/internal/domain/challan"
)

// ChallanModel is the persistence model for delivery challans
type ChallanModel struct {
	BaseModel
	ChallanNo      int64                      `gorm:"column:challan_no;not null;uniqueIndex"`
	Date           string                     `gorm:"column:date;type:varchar(10);not null;index"`
	PO             string                     `gorm:"column:po;type:varchar(100);not null;default:'00000'"`
	GP             string                     `gorm:"column:gp;type:varchar(100)"`
	Industry       string                     `gorm:"column:industry;type:varchar(255);not null;index"`
	Items          JSONList[challan.LineItem] `gorm:"column:items;not null"`
	SampleReturned bool                       `gorm:"column:sample_returned;not null;default:false"`
}

// TableName returns the table name for GORM
func (ChallanModel) TableName() string {
	return "challans"
}

// ToDomain converts the model to a domain Challan
func (m *ChallanModel) ToDomain() *challan.Challan {
	items := []challan.LineItem(m.Items)
	if items == nil {
		items = []challan.LineItem{}
	}
	return &challan.Challan{
		BaseEntity:     m.BaseModel.ToDomain(),
		ChallanNo:      m.ChallanNo,
		Date:           m.Date,
		PO:             m.PO,
		GP:             m.GP,
		Industry:       m.Industry,
		Items:          items,
		SampleReturned: m.SampleReturned,
	}
}

// FromDomain populates the model from a domain Challan
func (m *ChallanModel) FromDomain(c *challan.Challan) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ChallanNo = c.ChallanNo
	m.Date = c.Date
	m.PO = c.PO
	m.GP = c.GP
	m.Industry = c.Industry
	m.Items = JSONList[challan.LineItem](c.Items)
	m.SampleReturned = c.SampleReturned
}

// ChallanModelFromDomain creates a new model from a domain Challan
func ChallanModelFromDomain(c *challan.Challan) *ChallanModel {
	m := &ChallanModel{}
	m.FromDomain(c)
	return m
}
