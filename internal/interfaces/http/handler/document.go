package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	printapp "github.com/zumech/backend/internal/application/printing"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

// DocumentService renders printable documents
type DocumentService interface {
	ChallanPDF(ctx context.Context, challanNo int64) (*printapp.Document, error)
	InvoicePDF(ctx context.Context, billNo string) (*printapp.Document, error)
	QuotationPDF(ctx context.Context, id int64) (*printapp.Document, error)
	BillSummaryPDF(ctx context.Context, billNos []string) (*printapp.Document, error)
	ExportInvoices(ctx context.Context, billNos []string) (*printapp.Document, error)
}

// DocumentHandler serves rendered PDFs and bill exports
type DocumentHandler struct {
	BaseHandler
	service DocumentService
}

// NewDocumentHandler creates a DocumentHandler
func NewDocumentHandler(service DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Routes returns the document route group
func (h *DocumentHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("document", "").
		GET("/challan/:challanno/pdf", h.ChallanPDF).
		GET("/invoice/:billno/pdf", h.InvoicePDF).
		GET("/quotation/:id/pdf", h.QuotationPDF).
		POST("/invoice/summary", h.BillSummary).
		POST("/invoice/export", h.Export)
}

// ChallanPDF godoc
// @ID           challanPdf
// @Summary      Download a challan PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        challanno path int true "Challan number"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /challan/{challanno}/pdf [get]
func (h *DocumentHandler) ChallanPDF(c *gin.Context) {
	challanNo, ok := h.positiveParam(c, "challanno")
	if !ok {
		return
	}
	doc, err := h.service.ChallanPDF(c.Request.Context(), challanNo)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SendFile(c, doc)
}

// InvoicePDF godoc
// @ID           invoicePdf
// @Summary      Download a bill PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        billno path string true "Bill number"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/{billno}/pdf [get]
func (h *DocumentHandler) InvoicePDF(c *gin.Context) {
	billNo := strings.TrimSpace(c.Param("billno"))
	if billNo == "" {
		h.BadRequest(c, "billno is required")
		return
	}
	doc, err := h.service.InvoicePDF(c.Request.Context(), billNo)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SendFile(c, doc)
}

// QuotationPDF godoc
// @ID           quotationPdf
// @Summary      Download a quotation PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        id path int true "Quotation id"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotation/{id}/pdf [get]
func (h *DocumentHandler) QuotationPDF(c *gin.Context) {
	id, ok := h.positiveParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.service.QuotationPDF(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SendFile(c, doc)
}

// BillSummary godoc
// @ID           billSummaryPdf
// @Summary      Download a bill summary PDF
// @Description  One row per bill, sorted by bill number, with a grand total
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request body printapp.BillNumbersRequest true "Bills"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/summary [post]
func (h *DocumentHandler) BillSummary(c *gin.Context) {
	var req printapp.BillNumbersRequest
	if !h.BindJSON(c, &req) {
		return
	}
	doc, err := h.service.BillSummaryPDF(c.Request.Context(), req.BillNos)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SendFile(c, doc)
}

// Export godoc
// @ID           exportInvoices
// @Summary      Export bills
// @Description  A ZIP holding one PDF per bill, ordered by bill number
// @Tags         documents
// @Accept       json
// @Produce      application/zip
// @Param        request body printapp.BillNumbersRequest true "Bills"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/export [post]
func (h *DocumentHandler) Export(c *gin.Context) {
	var req printapp.BillNumbersRequest
	if !h.BindJSON(c, &req) {
		return
	}
	doc, err := h.service.ExportInvoices(c.Request.Context(), req.BillNos)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SendFile(c, doc)
}

func (h *DocumentHandler) positiveParam(c *gin.Context, name string) (int64, bool) {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || n <= 0 {
		h.BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return n, true
}
