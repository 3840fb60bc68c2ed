package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	printapp "github.com/zumech/backend/internal/application/printing"
	"github.com/zumech/backend/internal/infrastructure/printing"
	"github.com/zumech/backend/internal/interfaces/http/dto"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) doc(args mock.Arguments) (*printapp.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printapp.Document), args.Error(1)
}

func (m *MockDocumentService) ChallanPDF(ctx context.Context, challanNo int64) (*printapp.Document, error) {
	return m.doc(m.Called(ctx, challanNo))
}

func (m *MockDocumentService) InvoicePDF(ctx context.Context, billNo string) (*printapp.Document, error) {
	return m.doc(m.Called(ctx, billNo))
}

func (m *MockDocumentService) QuotationPDF(ctx context.Context, id int64) (*printapp.Document, error) {
	return m.doc(m.Called(ctx, id))
}

func (m *MockDocumentService) BillSummaryPDF(ctx context.Context, billNos []string) (*printapp.Document, error) {
	return m.doc(m.Called(ctx, billNos))
}

func (m *MockDocumentService) ExportInvoices(ctx context.Context, billNos []string) (*printapp.Document, error) {
	return m.doc(m.Called(ctx, billNos))
}

func pdfDoc(name string) *printapp.Document {
	return &printapp.Document{FileName: name, ContentType: printapp.ContentTypePDF, Data: []byte("%PDF-1.7")}
}

func TestDocumentHandler_ChallanPDF(t *testing.T) {
	svc := new(MockDocumentService)
	router := newTestRouter(NewDocumentHandler(svc).Routes())

	svc.On("ChallanPDF", mock.Anything, int64(42)).Return(pdfDoc("Challan_00042.pdf"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/challan/42/pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Challan_00042.pdf")
	svc.AssertExpectations(t)
}

func TestDocumentHandler_ChallanPDF_InvalidNumber(t *testing.T) {
	for _, path := range []string{"/api/v1/challan/abc/pdf", "/api/v1/challan/0/pdf", "/api/v1/challan/-3/pdf"} {
		t.Run(path, func(t *testing.T) {
			svc := new(MockDocumentService)
			router := newTestRouter(NewDocumentHandler(svc).Routes())

			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "ChallanPDF", mock.Anything, mock.Anything)
		})
	}
}

func TestDocumentHandler_InvoicePDF_RenderTimeout(t *testing.T) {
	svc := new(MockDocumentService)
	router := newTestRouter(NewDocumentHandler(svc).Routes())

	svc.On("InvoicePDF", mock.Anything, "ZUM-25-26-001").
		Return(nil, printing.NewRenderError(printing.ErrCodeTimeout, "print timed out", context.DeadlineExceeded))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoice/ZUM-25-26-001/pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeRenderTimeout, resp.Error.Code)
}

func TestDocumentHandler_QuotationPDF_BrowserError(t *testing.T) {
	svc := new(MockDocumentService)
	router := newTestRouter(NewDocumentHandler(svc).Routes())

	svc.On("QuotationPDF", mock.Anything, int64(5)).
		Return(nil, printing.NewRenderError(printing.ErrCodeBrowserError, "browser crashed", errors.New("eof")))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotation/5/pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeRenderFailed, resp.Error.Code)
}

func TestDocumentHandler_Export(t *testing.T) {
	svc := new(MockDocumentService)
	router := newTestRouter(NewDocumentHandler(svc).Routes())

	svc.On("ExportInvoices", mock.Anything, []string{"A-1", "A-2"}).Return(&printapp.Document{
		FileName:    "Invoices_A-1_to_A-2.zip",
		ContentType: printapp.ContentTypeZIP,
		Data:        []byte("PK"),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/export", bytes.NewBufferString(`{"billnos":["A-1","A-2"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	svc.AssertExpectations(t)
}

func TestDocumentHandler_BillSummary_RequiresBills(t *testing.T) {
	svc := new(MockDocumentService)
	router := newTestRouter(NewDocumentHandler(svc).Routes())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/summary", bytes.NewBufferString(`{"billnos":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
}
