package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	messagingapp "github.com/zumech/backend/internal/application/messaging"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

// MessagingService is the WhatsApp log surface the handler needs
type MessagingService interface {
	ListContacts(ctx context.Context) ([]messagingapp.ContactResponse, error)
	CreateContact(ctx context.Context, req messagingapp.CreateContactRequest) (*messagingapp.ContactResponse, error)
	LogMessage(ctx context.Context, req messagingapp.LogMessageRequest) (*messagingapp.MessageResponse, error)
	ListMessages(ctx context.Context, req messagingapp.ListMessagesRequest) ([]messagingapp.MessageResponse, error)
	MarkRead(ctx context.Context, req messagingapp.MarkReadRequest) (*messagingapp.MarkReadResponse, error)
	Conversations(ctx context.Context) ([]messagingapp.ConversationResponse, error)
}

// MessagingHandler serves contacts and the WhatsApp message log
type MessagingHandler struct {
	BaseHandler
	service MessagingService
	webhook gin.HandlerFunc
}

// NewMessagingHandler creates a MessagingHandler. webhook guards message
// intake and may be nil.
func NewMessagingHandler(service MessagingService, webhook gin.HandlerFunc) *MessagingHandler {
	return &MessagingHandler{service: service, webhook: webhook}
}

// Routes returns the messaging route group
func (h *MessagingHandler) Routes() *router.DomainGroup {
	intake := []gin.HandlerFunc{h.LogMessage}
	if h.webhook != nil {
		intake = []gin.HandlerFunc{h.webhook, h.LogMessage}
	}
	return router.NewDomainGroup("messaging", "").
		GET("/contacts", h.ListContacts).
		POST("/contacts", h.CreateContact).
		GET("/whatsapp", h.ListMessages).
		POST("/whatsapp", intake...).
		POST("/whatsapp/mark-read", h.MarkRead).
		GET("/whatsapp/conversations", h.Conversations)
}

// ListContacts godoc
// @ID           listContacts
// @Summary      List contacts
// @Tags         messaging
// @Produce      json
// @Success      200 {object} APIResponse[[]messagingapp.ContactResponse]
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts [get]
func (h *MessagingHandler) ListContacts(c *gin.Context) {
	rows, err := h.service.ListContacts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, rows, len(rows), 0)
}

// CreateContact godoc
// @ID           createContact
// @Summary      Create a contact
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        request body messagingapp.CreateContactRequest true "Contact"
// @Success      201 {object} APIResponse[messagingapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contacts [post]
func (h *MessagingHandler) CreateContact(c *gin.Context) {
	var req messagingapp.CreateContactRequest
	if !h.BindJSON(c, &req) {
		return
	}
	contact, err := h.service.CreateContact(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contact)
}

// LogMessage godoc
// @ID           logWhatsAppMessage
// @Summary      Record a WhatsApp message
// @Description  Webhook intake. Requires X-Webhook-Secret when a secret is configured.
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        X-Webhook-Secret header string false "Webhook secret"
// @Param        request body messagingapp.LogMessageRequest true "Message"
// @Success      201 {object} APIResponse[messagingapp.MessageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /whatsapp [post]
func (h *MessagingHandler) LogMessage(c *gin.Context) {
	var req messagingapp.LogMessageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	msg, err := h.service.LogMessage(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, msg)
}

// ListMessages godoc
// @ID           listWhatsAppMessages
// @Summary      List WhatsApp messages
// @Tags         messaging
// @Produce      json
// @Param        contactId query string false "Contact id"
// @Param        order     query string false "asc or desc (default desc)"
// @Param        limit     query int    false "Max rows (default 2000)"
// @Success      200 {object} APIResponse[[]messagingapp.MessageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /whatsapp [get]
func (h *MessagingHandler) ListMessages(c *gin.Context) {
	var req messagingapp.ListMessagesRequest
	if !h.BindQuery(c, &req) {
		return
	}
	rows, err := h.service.ListMessages(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, rows, len(rows), req.Limit)
}

// MarkRead godoc
// @ID           markWhatsAppRead
// @Summary      Mark a contact's messages read
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        request body messagingapp.MarkReadRequest true "Contact"
// @Success      200 {object} APIResponse[messagingapp.MarkReadResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /whatsapp/mark-read [post]
func (h *MessagingHandler) MarkRead(c *gin.Context) {
	var req messagingapp.MarkReadRequest
	if !h.BindJSON(c, &req) {
		return
	}
	out, err := h.service.MarkRead(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

// Conversations godoc
// @ID           listWhatsAppConversations
// @Summary      List conversations
// @Description  Deduplicated messages of known contacts grouped per contact, most recent first
// @Tags         messaging
// @Produce      json
// @Success      200 {object} APIResponse[[]messagingapp.ConversationResponse]
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /whatsapp/conversations [get]
func (h *MessagingHandler) Conversations(c *gin.Context) {
	rows, err := h.service.Conversations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, rows, len(rows), 0)
}
