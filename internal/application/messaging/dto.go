package messaging

import (
	"time"

	"github.com/zumech/backend/internal/domain/messaging"
)

// CreateContactRequest is the body of POST /contacts
type CreateContactRequest struct {
	Contact     string `json:"contact" binding:"max=100"`
	CompanyName string `json:"company_name" binding:"max=200"`
	UserName    string `json:"User_name" binding:"max=200"`
	ContactID   string `json:"contactId" binding:"max=100"`
}

// ContactResponse is a stored contact
type ContactResponse struct {
	ID          int64  `json:"id"`
	Contact     string `json:"contact"`
	CompanyName string `json:"company_name"`
	UserName    string `json:"User_name"`
	ContactID   string `json:"contactId"`
}

// LogMessageRequest is the webhook body of POST /whatsapp
type LogMessageRequest struct {
	ContactID string  `json:"contactId"`
	Message   string  `json:"message" binding:"max=65536"`
	Sender    *string `json:"sender"`
	PushName  *string `json:"pushName"`
	FromMe    *bool   `json:"fromMe"`
}

// ListMessagesRequest carries the GET /whatsapp query
type ListMessagesRequest struct {
	ContactID string `form:"contactId"`
	Order     string `form:"order"`
	Limit     int    `form:"limit"`
}

// MarkReadRequest is the body of POST /whatsapp/mark-read
type MarkReadRequest struct {
	ContactID string `json:"contactId"`
}

// MarkReadResponse reports how many messages changed
type MarkReadResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

// MessageResponse is a stored message
type MessageResponse struct {
	ID        int64     `json:"id"`
	ContactID string    `json:"contactId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Sender    *string   `json:"sender,omitempty"`
	PushName  *string   `json:"pushName,omitempty"`
	FromMe    *bool     `json:"fromMe,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationResponse is one contact's thread
type ConversationResponse struct {
	Contact       ContactResponse   `json:"contact"`
	Messages      []MessageResponse `json:"messages"`
	UnreadCount   int               `json:"unreadCount"`
	LastMessageAt time.Time         `json:"lastMessageTime"`
}

// ToContactResponse converts a domain contact
func ToContactResponse(c *messaging.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		Contact:     c.Contact,
		CompanyName: c.CompanyName,
		UserName:    c.UserName,
		ContactID:   c.ContactID,
	}
}

// ToMessageResponse converts a domain message
func ToMessageResponse(m *messaging.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ContactID: m.ContactID,
		Message:   m.Message,
		Read:      m.Read,
		Sender:    m.Sender,
		PushName:  m.PushName,
		FromMe:    m.FromMe,
		CreatedAt: m.CreatedAt,
	}
}

func toMessageResponses(ms []messaging.Message) []MessageResponse {
	out := make([]MessageResponse, len(ms))
	for i := range ms {
		out[i] = ToMessageResponse(&ms[i])
	}
	return out
}
