// Package handler implements the /api/v1 endpoints.
package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	printapp "github.com/zumech/backend/internal/application/printing"
	"github.com/zumech/backend/internal/domain/shared"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/printing"
	"github.com/zumech/backend/internal/interfaces/http/dto"
	"github.com/zumech/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides the response helpers shared by all handlers
type BaseHandler struct{}

// Success writes 200 with data in the envelope
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessList writes 200 with a list and its count
func (h *BaseHandler) SuccessList(c *gin.Context, data any, count, limit int) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, count, limit))
}

// Created writes 201 with data in the envelope
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest writes 400 ERR_INVALID_INPUT
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeInvalidInput, message, middleware.GetRequestID(c)))
}

// BindJSON binds the body into obj; on failure it writes 400 and returns false
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.AbortWithBindError(c, err)
		return false
	}
	return true
}

// BindQuery binds the query string into obj; on failure it writes 400 and returns false
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		middleware.AbortWithBindError(c, err)
		return false
	}
	return true
}

// HandleError writes the envelope for err. Domain and renderer errors keep
// their code and message; anything else is logged and reported as 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)

	var de *shared.DomainError
	if errors.As(err, &de) {
		code := dto.NormalizeErrorCode(de.Code)
		resp := dto.NewErrorResponseWithDetails(code, de.Message, requestID, de.Details)
		c.JSON(dto.GetHTTPStatus(code), resp)
		return
	}

	if rc := printing.RenderErrorCode(err); rc != "" {
		code := dto.NormalizeErrorCode(rc)
		logger.FromContext(c.Request.Context()).Error("Document rendering failed", zap.Error(err))
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, "Failed to render document", requestID))
		return
	}

	logger.FromContext(c.Request.Context()).Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "Internal server error", requestID))
}

// SendFile writes a rendered document as an attachment
func (h *BaseHandler) SendFile(c *gin.Context, doc *printapp.Document) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
