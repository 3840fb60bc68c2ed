package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	"github.com/zumech/backend/internal/interfaces/http/dto"
	"github.com/zumech/backend/internal/interfaces/http/middleware"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

// GatePassService is the gate-pass use-case surface the handler needs
type GatePassService interface {
	Extract(ctx context.Context, req gatepassapp.ExtractRequest) (*gatepassapp.ExtractResponse, error)
	NormalizeRaw(ctx context.Context, req gatepassapp.NormalizeRequest) (map[string]any, error)
	List(ctx context.Context, req gatepassapp.ListExtractionsRequest) ([]gatepassapp.ExtractionResponse, error)
	Upload(ctx context.Context, in gatepassapp.UploadInput) (*gatepassapp.UploadResponse, error)
	OCR(ctx context.Context, req gatepassapp.OCRRequest) (*gatepassapp.OCRResponse, error)
}

// GatePassHandler serves gate-pass upload and extraction
type GatePassHandler struct {
	BaseHandler
	service GatePassService
}

// NewGatePassHandler creates a GatePassHandler
func NewGatePassHandler(service GatePassService) *GatePassHandler {
	return &GatePassHandler{service: service}
}

// Routes returns the gate-pass route group
func (h *GatePassHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("gatepass", "").
		GET("/extractions", h.ListExtractions).
		GET("/extract", h.ExtractStatus).
		POST("/extract", h.Extract).
		POST("/normalize", h.Normalize).
		POST("/upload", h.Upload).
		POST("/ocr", h.OCR)
}

// ListExtractions godoc
// @ID           listExtractions
// @Summary      List stored extractions
// @Tags         gatepass
// @Produce      json
// @Param        gp    query string false "Document number prefix"
// @Param        limit query int    false "Max rows (default 10)"
// @Success      200 {object} APIResponse[[]gatepassapp.ExtractionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /extractions [get]
func (h *GatePassHandler) ListExtractions(c *gin.Context) {
	var req gatepassapp.ListExtractionsRequest
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

// ExtractStatus godoc
// @ID           extractStatus
// @Summary      Extraction endpoint probe
// @Tags         gatepass
// @Produce      json
// @Success      200 {object} APIResponse[StatusData]
// @Security     BearerAuth
// @Router       /extract [get]
func (h *GatePassHandler) ExtractStatus(c *gin.Context) {
	h.Success(c, StatusData{Status: "ok"})
}

// Extract godoc
// @ID           extractGatePass
// @Summary      Extract a gate pass
// @Description  Reads document number, date and items from a gate-pass image and stores the result
// @Tags         gatepass
// @Accept       json
// @Produce      json
// @Param        request body gatepassapp.ExtractRequest true "Image"
// @Success      200 {object} APIResponse[gatepassapp.ExtractResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /extract [post]
func (h *GatePassHandler) Extract(c *gin.Context) {
	var req gatepassapp.ExtractRequest
	if !h.BindJSON(c, &req) {
		return
	}
	out, err := h.service.Extract(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

// Normalize godoc
// @ID           normalizeExtraction
// @Summary      Normalize raw text
// @Description  Turns raw model or OCR output into the extraction JSON shape
// @Tags         gatepass
// @Accept       json
// @Produce      json
// @Param        request body gatepassapp.NormalizeRequest true "Raw text"
// @Success      200 {object} APIResponse[map[string]any]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /normalize [post]
func (h *GatePassHandler) Normalize(c *gin.Context) {
	var req gatepassapp.NormalizeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	out, err := h.service.NormalizeRaw(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

// Upload godoc
// @ID           uploadGatePass
// @Summary      Upload a gate-pass file
// @Tags         gatepass
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "Gate-pass file"
// @Success      201 {object} APIResponse[gatepassapp.UploadResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /upload [post]
func (h *GatePassHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(dto.ErrCodeRequestTooLarge,
				"Request body exceeds maximum allowed size", middleware.GetRequestID(c)))
			return
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			h.BadRequest(c, "Expected multipart/form-data")
			return
		}
		h.BadRequest(c, "file field is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer f.Close()

	out, err := h.service.Upload(c.Request.Context(), gatepassapp.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, out)
}

// OCR godoc
// @ID           ocrImage
// @Summary      Recognize text in an image
// @Tags         gatepass
// @Accept       json
// @Produce      json
// @Param        request body gatepassapp.OCRRequest true "Image"
// @Success      200 {object} APIResponse[gatepassapp.OCRResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /ocr [post]
func (h *GatePassHandler) OCR(c *gin.Context) {
	var req gatepassapp.OCRRequest
	if !h.BindJSON(c, &req) {
		return
	}
	out, err := h.service.OCR(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}
