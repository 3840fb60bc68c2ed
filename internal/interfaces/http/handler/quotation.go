package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	quotationapp "github.com/zumech/backend/internal/application/quotation"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

// QuotationService is the quotation use-case surface the handler needs
type QuotationService interface {
	Create(ctx context.Context, req quotationapp.CreateQuotationRequest) (*quotationapp.QuotationResponse, error)
	List(ctx context.Context, req quotationapp.ListQuotationsRequest) ([]quotationapp.QuotationResponse, error)
}

// QuotationHandler serves price quotations
type QuotationHandler struct {
	BaseHandler
	service QuotationService
}

// NewQuotationHandler creates a QuotationHandler
func NewQuotationHandler(service QuotationService) *QuotationHandler {
	return &QuotationHandler{service: service}
}

// Routes returns the quotation route group
func (h *QuotationHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("quotation", "").
		GET("/quotation", h.ListQuotations).
		POST("/quotation", h.Create)
}

// ListQuotations godoc
// @ID           listQuotations
// @Summary      List quotations
// @Tags         quotation
// @Produce      json
// @Param        quotation query string false "Quotation number contains"
// @Param        industry  query string false "Company name contains"
// @Param        from      query string false "From date (YYYY-MM-DD)"
// @Param        to        query string false "To date (YYYY-MM-DD)"
// @Param        limit     query int    false "Max rows"
// @Success      200 {object} APIResponse[[]quotationapp.QuotationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotation [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	var req quotationapp.ListQuotationsRequest
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
// @ID           createQuotation
// @Summary      Create a quotation
// @Description  Quotation numbers are chosen by the caller and must be unique
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        request body quotationapp.CreateQuotationRequest true "Quotation"
// @Success      201 {object} APIResponse[quotationapp.QuotationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotation [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req quotationapp.CreateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	q, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, q)
}
