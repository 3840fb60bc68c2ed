package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/interfaces/http/dto"
	"github.com/zumech/backend/internal/interfaces/http/middleware"
)

type MockGatePassService struct {
	mock.Mock
}

func (m *MockGatePassService) Extract(ctx context.Context, req gatepassapp.ExtractRequest) (*gatepassapp.ExtractResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gatepassapp.ExtractResponse), args.Error(1)
}

func (m *MockGatePassService) NormalizeRaw(ctx context.Context, req gatepassapp.NormalizeRequest) (map[string]any, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockGatePassService) List(ctx context.Context, req gatepassapp.ListExtractionsRequest) ([]gatepassapp.ExtractionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]gatepassapp.ExtractionResponse), args.Error(1)
}

func (m *MockGatePassService) Upload(ctx context.Context, in gatepassapp.UploadInput) (*gatepassapp.UploadResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gatepassapp.UploadResponse), args.Error(1)
}

func (m *MockGatePassService) OCR(ctx context.Context, req gatepassapp.OCRRequest) (*gatepassapp.OCRResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gatepassapp.OCRResponse), args.Error(1)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestGatePassHandler_Upload_Success(t *testing.T) {
	svc := new(MockGatePassService)
	router := newTestRouter(NewGatePassHandler(svc).Routes())

	svc.On("Upload", mock.Anything, mock.MatchedBy(func(in gatepassapp.UploadInput) bool {
		data, err := io.ReadAll(in.Body)
		return err == nil && in.Filename == "gate pass.jpg" && in.Size == 4 && string(data) == "JPEG"
	})).Return(&gatepassapp.UploadResponse{
		Path:    "1760000000000-gate_pass.jpg",
		FileURL: "https://files.example.com/gatepass/1760000000000-gate_pass.jpg",
	}, nil)

	body, contentType := multipartBody(t, "file", "gate pass.jpg", []byte("JPEG"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "1760000000000-gate_pass.jpg", resp.Data.(map[string]any)["path"])
	svc.AssertExpectations(t)
}

func TestGatePassHandler_Upload_NotMultipart(t *testing.T) {
	svc := new(MockGatePassService)
	router := newTestRouter(NewGatePassHandler(svc).Routes())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", bytes.NewBufferString(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestGatePassHandler_Upload_MissingFileField(t *testing.T) {
	svc := new(MockGatePassService)
	router := newTestRouter(NewGatePassHandler(svc).Routes())

	body, contentType := multipartBody(t, "attachment", "gp.png", []byte("PNG"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "file field is required", resp.Error.Message)
}

func TestGatePassHandler_Upload_BodyTooLarge(t *testing.T) {
	svc := new(MockGatePassService)
	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.BodyLimit(256))
	NewGatePassHandler(svc).Routes().RegisterRoutes(engine.Group("/api/v1"))

	body, contentType := multipartBody(t, "file", "gp.jpg", []byte(strings.Repeat("J", 4096)))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	// streamed without a declared length, so only the capped reader sees the size
	req.ContentLength = -1
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeRequestTooLarge, resp.Error.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestGatePassHandler_ExtractStatus(t *testing.T) {
	router := newTestRouter(NewGatePassHandler(new(MockGatePassService)).Routes())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/extract", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, map[string]any{"status": "ok"}, resp.Data)
}

func TestGatePassHandler_Normalize_ExtractionFailed(t *testing.T) {
	svc := new(MockGatePassService)
	router := newTestRouter(NewGatePassHandler(svc).Routes())

	svc.On("NormalizeRaw", mock.Anything, gatepassapp.NormalizeRequest{Raw: "garbled"}).
		Return(nil, shared.NewDomainError("EXTRACTION_FAILED", "Normalization did not return items").
			WithDetails(map[string]string{"raw": "sorry"}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/normalize", bytes.NewBufferString(`{"raw":"garbled"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeExtractionFailed, resp.Error.Code)
	assert.Equal(t, map[string]any{"raw": "sorry"}, resp.Error.Details)
}

func TestGatePassHandler_OCR_Unavailable(t *testing.T) {
	svc := new(MockGatePassService)
	router := newTestRouter(NewGatePassHandler(svc).Routes())

	svc.On("OCR", mock.Anything, mock.Anything).
		Return(nil, shared.NewDomainError("UNAVAILABLE", "OCR service is not configured"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ocr", bytes.NewBufferString(`{"base64Image":"aGVsbG8="}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
