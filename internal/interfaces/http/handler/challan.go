package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	challanapp "github.com/zumech/backend/internal/application/challan"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

// ChallanService is the challan use-case surface the handler needs
type ChallanService interface {
	Create(ctx context.Context, req challanapp.CreateChallanRequest) (*challanapp.SavedChallanResponse, error)
	Update(ctx context.Context, req challanapp.UpdateChallanRequest) (*challanapp.SavedChallanResponse, error)
	List(ctx context.Context, req challanapp.ListChallansRequest) ([]challanapp.ChallanResponse, error)
	Companies(ctx context.Context) ([]string, error)
}

// ChallanHandler serves delivery challans
type ChallanHandler struct {
	BaseHandler
	service ChallanService
}

// NewChallanHandler creates a ChallanHandler
func NewChallanHandler(service ChallanService) *ChallanHandler {
	return &ChallanHandler{service: service}
}

// Routes returns the challan route group
func (h *ChallanHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("challan", "").
		GET("/challan", h.ListChallans).
		POST("/challan", h.Create).
		PATCH("/challan", h.Update).
		GET("/challan-companies", h.Companies)
}

// ListChallans godoc
// @ID           listChallans
// @Summary      List challans
// @Description  Newest first. challan filters by number prefix unless exact is true or 1.
// @Tags         challan
// @Produce      json
// @Param        id        query int    false "Row id"
// @Param        challan   query string false "Challan number or prefix"
// @Param        exact     query string false "Exact challan number match (true|1)"
// @Param        industry  query string false "Company name contains"
// @Param        item      query string false "Line description contains"
// @Param        from      query string false "From date (YYYY-MM-DD)"
// @Param        to        query string false "To date (YYYY-MM-DD)"
// @Param        limit     query int    false "Max rows (default 50, max 2000)"
// @Success      200 {object} APIResponse[[]challanapp.ChallanResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /challan [get]
func (h *ChallanHandler) ListChallans(c *gin.Context) {
	var req challanapp.ListChallansRequest
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
// @ID           createChallan
// @Summary      Create a challan
// @Description  Allocates the next challan number. Blank line items are dropped.
// @Tags         challan
// @Accept       json
// @Produce      json
// @Param        request body challanapp.CreateChallanRequest true "Challan"
// @Success      201 {object} APIResponse[challanapp.SavedChallanResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /challan [post]
func (h *ChallanHandler) Create(c *gin.Context) {
	var req challanapp.CreateChallanRequest
	if !h.BindJSON(c, &req) {
		return
	}
	saved, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, saved)
}

// Update godoc
// @ID           updateChallan
// @Summary      Update a challan
// @Description  Identified by id or challanno. The challan number never changes.
// @Tags         challan
// @Accept       json
// @Produce      json
// @Param        request body challanapp.UpdateChallanRequest true "Challan"
// @Success      200 {object} APIResponse[challanapp.SavedChallanResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /challan [patch]
func (h *ChallanHandler) Update(c *gin.Context) {
	var req challanapp.UpdateChallanRequest
	if !h.BindJSON(c, &req) {
		return
	}
	saved, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, saved)
}

// Companies godoc
// @ID           listChallanCompanies
// @Summary      List companies
// @Description  Distinct company names used on challans, sorted
// @Tags         challan
// @Produce      json
// @Success      200 {object} APIResponse[[]string]
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /challan-companies [get]
func (h *ChallanHandler) Companies(c *gin.Context) {
	companies, err := h.service.Companies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companies)
}
