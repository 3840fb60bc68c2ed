package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	messagingapp "github.com/zumech/backend/internal/application/messaging"
	"github.com/zumech/backend/internal/interfaces/http/dto"
	"github.com/zumech/backend/internal/interfaces/http/middleware"
)

type MockMessagingService struct {
	mock.Mock
}

func (m *MockMessagingService) ListContacts(ctx context.Context) ([]messagingapp.ContactResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]messagingapp.ContactResponse), args.Error(1)
}

func (m *MockMessagingService) CreateContact(ctx context.Context, req messagingapp.CreateContactRequest) (*messagingapp.ContactResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messagingapp.ContactResponse), args.Error(1)
}

func (m *MockMessagingService) LogMessage(ctx context.Context, req messagingapp.LogMessageRequest) (*messagingapp.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messagingapp.MessageResponse), args.Error(1)
}

func (m *MockMessagingService) ListMessages(ctx context.Context, req messagingapp.ListMessagesRequest) ([]messagingapp.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]messagingapp.MessageResponse), args.Error(1)
}

func (m *MockMessagingService) MarkRead(ctx context.Context, req messagingapp.MarkReadRequest) (*messagingapp.MarkReadResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messagingapp.MarkReadResponse), args.Error(1)
}

func (m *MockMessagingService) Conversations(ctx context.Context) ([]messagingapp.ConversationResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]messagingapp.ConversationResponse), args.Error(1)
}

func TestMessagingHandler_LogMessage_WebhookSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		wantStatus int
	}{
		{name: "matching secret", secret: "s3cret", wantStatus: http.StatusCreated},
		{name: "wrong secret", secret: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing secret", secret: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMessagingService)
			h := NewMessagingHandler(svc, middleware.WebhookSecret("s3cret"))
			router := newTestRouter(h.Routes())

			svc.On("LogMessage", mock.Anything, mock.MatchedBy(func(req messagingapp.LogMessageRequest) bool {
				return req.ContactID == "923001234567@c.us" && req.Message == "Challan ready?"
			})).Return(&messagingapp.MessageResponse{ID: 1, ContactID: "923001234567@c.us"}, nil).Maybe()

			body := `{"contactId":"923001234567@c.us","message":"Challan ready?"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/whatsapp", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.secret != "" {
				req.Header.Set(middleware.WebhookSecretHeader, tt.secret)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusCreated {
				svc.AssertNotCalled(t, "LogMessage", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestMessagingHandler_LogMessage_NoWebhookGuard(t *testing.T) {
	svc := new(MockMessagingService)
	router := newTestRouter(NewMessagingHandler(svc, nil).Routes())

	svc.On("LogMessage", mock.Anything, mock.Anything).
		Return(&messagingapp.MessageResponse{ID: 2}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/whatsapp", bytes.NewBufferString(`{"contactId":"c1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestMessagingHandler_ListMessages_BindsQuery(t *testing.T) {
	svc := new(MockMessagingService)
	router := newTestRouter(NewMessagingHandler(svc, nil).Routes())

	svc.On("ListMessages", mock.Anything, messagingapp.ListMessagesRequest{ContactID: "c1", Order: "asc", Limit: 20}).
		Return([]messagingapp.MessageResponse{{ID: 1}, {ID: 2}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whatsapp?contactId=c1&order=asc&limit=20", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Count)
	svc.AssertExpectations(t)
}

func TestMessagingHandler_ListMessages_InvalidLimit(t *testing.T) {
	svc := new(MockMessagingService)
	router := newTestRouter(NewMessagingHandler(svc, nil).Routes())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whatsapp?limit=many", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything)
}

func TestMessagingHandler_MarkRead(t *testing.T) {
	svc := new(MockMessagingService)
	router := newTestRouter(NewMessagingHandler(svc, nil).Routes())

	svc.On("MarkRead", mock.Anything, messagingapp.MarkReadRequest{ContactID: "c1"}).
		Return(&messagingapp.MarkReadResponse{Success: true, Updated: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/whatsapp/mark-read", bytes.NewBufferString(`{"contactId":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.EqualValues(t, 3, resp.Data.(map[string]any)["updated"])
}

func TestMessagingHandler_Conversations_Error(t *testing.T) {
	svc := new(MockMessagingService)
	router := newTestRouter(NewMessagingHandler(svc, nil).Routes())

	svc.On("Conversations", mock.Anything).
		Return([]messagingapp.ConversationResponse(nil), assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whatsapp/conversations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
}
