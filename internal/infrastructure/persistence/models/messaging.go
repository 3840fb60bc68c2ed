package models

import (
	"github.com/zumech/backend/internal/domain/messaging"
)

// ContactModel is the persistence model for WhatsApp contacts
type ContactModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Contact     string `gorm:"column:contact;type:varchar(64);not null"`
	CompanyName string `gorm:"column:company_name;type:varchar(255)"`
	UserName    string `gorm:"column:user_name;type:varchar(255)"`
	ContactID   string `gorm:"column:contact_id;type:varchar(128);index"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the model to a domain Contact
func (m *ContactModel) ToDomain() *messaging.Contact {
	return &messaging.Contact{
		ID:          m.ID,
		Contact:     m.Contact,
		CompanyName: m.CompanyName,
		UserName:    m.UserName,
		ContactID:   m.ContactID,
	}
}

// FromDomain populates the model from a domain Contact
func (m *ContactModel) FromDomain(c *messaging.Contact) {
	m.ID = c.ID
	m.Contact = c.Contact
	m.CompanyName = c.CompanyName
	m.UserName = c.UserName
	m.ContactID = c.ContactID
}

// MessageModel is the persistence model for logged WhatsApp messages
type MessageModel struct {
	BaseModel
	ContactID string  `gorm:"column:contact_id;type:varchar(128);not null;index"`
	Message   string  `gorm:"column:message;type:text;not null"`
	Read      bool    `gorm:"column:read;not null;default:false"`
	Sender    *string `gorm:"column:sender;type:varchar(128)"`
	PushName  *string `gorm:"column:push_name;type:varchar(255)"`
	FromMe    *bool   `gorm:"column:from_me"`
}

// TableName returns the table name for GORM
func (MessageModel) TableName() string {
	return "whatsapp_messages"
}

// ToDomain converts the model to a domain Message
func (m *MessageModel) ToDomain() *messaging.Message {
	return &messaging.Message{
		BaseEntity: m.BaseModel.ToDomain(),
		ContactID:  m.ContactID,
		Message:    m.Message,
		Read:       m.Read,
		Sender:     m.Sender,
		PushName:   m.PushName,
		FromMe:     m.FromMe,
	}
}

// FromDomain populates the model from a domain Message
func (m *MessageModel) FromDomain(msg *messaging.Message) {
	m.FromDomainBaseEntity(msg.BaseEntity)
	m.ContactID = msg.ContactID
	m.Message = msg.Message
	m.Read = msg.Read
	m.Sender = msg.Sender
	m.PushName = msg.PushName
	m.FromMe = msg.FromMe
}

// AllModels lists every model for sqlite AutoMigrate
func AllModels() []any {
	return []any{
		&ChallanModel{},
		&InvoiceModel{},
		&QuotationModel{},
		&ExtractionModel{},
		&ContactModel{},
		&MessageModel{},
	}
}
