package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	billingapp "github.com/zumech/backend/internal/application/billing"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

// InvoiceService is the billing use-case surface the handler needs
type InvoiceService interface {
	Create(ctx context.Context, req billingapp.CreateInvoiceRequest) (*billingapp.CreatedInvoiceResponse, error)
	SetPaid(ctx context.Context, req billingapp.SetPaidRequest) (*billingapp.InvoiceResponse, error)
	SetDate(ctx context.Context, req billingapp.SetDateRequest) ([]billingapp.InvoiceResponse, error)
	List(ctx context.Context, req billingapp.ListInvoicesRequest) ([]billingapp.InvoiceResponse, error)
	NextBillNumber(ctx context.Context, company string) (*billingapp.NextNumberResponse, error)
}

// InvoiceHandler serves bills
type InvoiceHandler struct {
	BaseHandler
	service InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler
func NewInvoiceHandler(service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Routes returns the invoice route group
func (h *InvoiceHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("invoice", "").
		GET("/invoice", h.ListInvoices).
		POST("/invoice", h.Create).
		PATCH("/invoice", h.SetPaid).
		PATCH("/invoice-date", h.SetDate).
		GET("/invoice/next-number", h.NextNumber)
}

// ListInvoices godoc
// @ID           listInvoices
// @Summary      List bills
// @Description  Bills by descending number, optionally filtered by bill or challan number
// @Tags         invoice
// @Produce      json
// @Param        bill     query string false "Bill number contains"
// @Param        challan  query string false "Challan number"
// @Param        limit    query int    false "Max rows"
// @Success      200 {object} APIResponse[[]billingapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req billingapp.ListInvoicesRequest
	if !h.BindQuery(c, &req) {
		return
	}
	rows, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, rows, len(rows), req.Limit)
}

// Create godoc
// @ID           createInvoice
// @Summary      Create a bill
// @Description  Bills a challan. The bill number is allocated per financial year unless billno is given.
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        request body billingapp.CreateInvoiceRequest true "Bill"
// @Success      201 {object} APIResponse[billingapp.CreatedInvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// SetPaid godoc
// @ID           setInvoicePaid
// @Summary      Mark a bill paid or unpaid
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        request body billingapp.SetPaidRequest true "Bill status"
// @Success      200 {object} APIResponse[billingapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice [patch]
func (h *InvoiceHandler) SetPaid(c *gin.Context) {
	var req billingapp.SetPaidRequest
	if !h.BindJSON(c, &req) {
		return
	}
	inv, err := h.service.SetPaid(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// SetDate godoc
// @ID           setInvoiceDate
// @Summary      Re-date bills
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        request body billingapp.SetDateRequest true "Bills and date"
// @Success      200 {object} APIResponse[[]billingapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice-date [patch]
func (h *InvoiceHandler) SetDate(c *gin.Context) {
	var req billingapp.SetDateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	rows, err := h.service.SetDate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, rows, len(rows), 0)
}

// NextNumber godoc
// @ID           nextInvoiceNumber
// @Summary      Preview the next bill number
// @Description  Does not reserve the number
// @Tags         invoice
// @Produce      json
// @Param        company query string false "Company the bill is for"
// @Success      200 {object} APIResponse[billingapp.NextNumberResponse]
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoice/next-number [get]
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	next, err := h.service.NextBillNumber(c.Request.Context(), c.Query("company"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, next)
}
