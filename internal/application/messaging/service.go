// Package messaging implements the WhatsApp message log: webhook intake,
// contact directory, read tracking and threaded conversations.
package messaging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zumech/backend/internal/domain/messaging"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

// Service handles contacts and messages
type Service struct {
	contacts messaging.ContactRepository
	messages messaging.MessageRepository
	metrics  *telemetry.BusinessMetrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new messaging Service
func NewService(contacts messaging.ContactRepository, messages messaging.MessageRepository, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{
		contacts: contacts,
		messages: messages,
		logger:   l,
		now:      time.Now,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *Service) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.metrics = bm
}

// ListContacts returns contacts, newest first
func (s *Service) ListContacts(ctx context.Context) ([]ContactResponse, error) {
	contacts, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = ToContactResponse(&contacts[i])
	}
	return out, nil
}

// CreateContact stores a contact
func (s *Service) CreateContact(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	c, err := messaging.NewContact(req.Contact, req.CompanyName, req.UserName, req.ContactID)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.Insert(ctx, c); err != nil {
		return nil, err
	}
	resp := ToContactResponse(c)
	return &resp, nil
}

// LogMessage records an inbound message as unread
func (s *Service) LogMessage(ctx context.Context, req LogMessageRequest) (*MessageResponse, error) {
	m, err := messaging.NewMessage(req.ContactID, req.Message, req.Sender, req.PushName, req.FromMe, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.messages.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	s.metrics.RecordMessageLogged(ctx)
	logger.For(ctx, s.logger).Debug("WhatsApp message logged",
		zap.String("contact_id", m.ContactID),
		zap.Bool("rich", m.Rich()),
	)
	resp := ToMessageResponse(m)
	return &resp, nil
}

// ListMessages returns messages by creation time, newest first unless
// ascending order is asked for
func (s *Service) ListMessages(ctx context.Context, req ListMessagesRequest) ([]MessageResponse, error) {
	order := strings.ToLower(strings.TrimSpace(req.Order))
	if order != "" && order != "asc" && order != "desc" {
		return nil, shared.NewDomainError("INVALID_INPUT", "order must be asc or desc")
	}
	ms, err := s.messages.FindAll(ctx, messaging.MessageFilter{
		ContactID: strings.TrimSpace(req.ContactID),
		Ascending: order == "asc",
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return toMessageResponses(ms), nil
}

// MarkRead flags a contact's unread messages as read
func (s *Service) MarkRead(ctx context.Context, req MarkReadRequest) (*MarkReadResponse, error) {
	contactID := strings.TrimSpace(req.ContactID)
	if contactID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "contactId is required")
	}
	n, err := s.messages.MarkRead(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark messages as read: %w", err)
	}
	return &MarkReadResponse{Success: true, Updated: n}, nil
}

// Conversations threads every known contact's deduplicated messages,
// most recently active first
func (s *Service) Conversations(ctx context.Context) ([]ConversationResponse, error) {
	contacts, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	ms, err := s.messages.FindAll(ctx, messaging.MessageFilter{Limit: messaging.DefaultMessageLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	convs := messaging.GroupConversations(contacts, ms)
	out := make([]ConversationResponse, len(convs))
	for i := range convs {
		out[i] = ConversationResponse{
			Contact:       ToContactResponse(&convs[i].Contact),
			Messages:      toMessageResponses(convs[i].Messages),
			UnreadCount:   convs[i].UnreadCount,
			LastMessageAt: convs[i].LastMessageAt,
		}
	}
	return out, nil
}
