// Package messaging models the WhatsApp message log and the contacts it is
// grouped by.
package messaging

import (
	"context"
	"strings"
	"time"

	"github.com/zumech/backend/internal/domain/shared"
)

// Contact is a known WhatsApp correspondent
type Contact struct {
	ID          int64
	Contact     string
	CompanyName string
	UserName    string
	ContactID   string
}

// NewContact validates and builds a contact
func NewContact(contact, companyName, userName, contactID string) (*Contact, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Contact is required")
	}
	return &Contact{
		Contact:     contact,
		CompanyName: strings.TrimSpace(companyName),
		UserName:    strings.TrimSpace(userName),
		ContactID:   strings.TrimSpace(contactID),
	}, nil
}

// Message is one logged WhatsApp message
type Message struct {
	shared.BaseEntity
	ContactID string
	Message   string
	Read      bool
	Sender    *string
	PushName  *string
	FromMe    *bool
}

// Rich reports whether the message carries sender metadata. Webhook
// retries sometimes log the same message twice, once without metadata.
func (m Message) Rich() bool {
	return m.Sender != nil || m.PushName != nil || m.FromMe != nil
}

// MessageFilter narrows message listings
type MessageFilter struct {
	ContactID string
	Ascending bool
	Limit     int
}

// DefaultMessageLimit is the page size for message listings
const DefaultMessageLimit = 2000

// ContactRepository persists contacts
type ContactRepository interface {
	// FindAll lists contacts by descending id
	FindAll(ctx context.Context) ([]Contact, error)
	Insert(ctx context.Context, c *Contact) error
}

// MessageRepository persists messages
type MessageRepository interface {
	FindAll(ctx context.Context, filter MessageFilter) ([]Message, error)
	Insert(ctx context.Context, m *Message) error
	// MarkRead flags every unread message of a contact as read
	MarkRead(ctx context.Context, contactID string) (int64, error)
}

// NewMessage validates an inbound message
func NewMessage(contactID, text string, sender, pushName *string, fromMe *bool, at time.Time) (*Message, error) {
	contactID = strings.TrimSpace(contactID)
	if contactID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "contactId is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "message is required")
	}
	m := &Message{
		ContactID: contactID,
		Message:   text,
		Sender:    sender,
		PushName:  pushName,
		FromMe:    fromMe,
	}
	m.CreatedAt = at
	return m, nil
}
