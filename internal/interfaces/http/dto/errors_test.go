package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zumech/backend/internal/interfaces/http/dto"
)

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"NOT_FOUND", dto.ErrCodeNotFound},
		{"INVALID_INPUT", dto.ErrCodeInvalidInput},
		{"CONFLICT", dto.ErrCodeConflict},
		{"ALREADY_EXISTS", dto.ErrCodeAlreadyExists},
		{"EXTRACTION_FAILED", dto.ErrCodeExtractionFailed},
		{"UNAVAILABLE", dto.ErrCodeUnavailable},
		{"TIMEOUT", dto.ErrCodeRenderTimeout},
		{"BROWSER_ERROR", dto.ErrCodeRenderFailed},
		{"TEMPLATE_ERROR", dto.ErrCodeRenderFailed},
		{dto.ErrCodeRateLimited, dto.ErrCodeRateLimited},
		{"SOMETHING_ELSE", dto.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.NormalizeErrorCode(tt.code))
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{dto.ErrCodeNotFound, http.StatusNotFound},
		{dto.ErrCodeInvalidInput, http.StatusBadRequest},
		{dto.ErrCodeConflict, http.StatusConflict},
		{dto.ErrCodeAlreadyExists, http.StatusConflict},
		{dto.ErrCodeExtractionFailed, http.StatusUnprocessableEntity},
		{dto.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{dto.ErrCodeRenderTimeout, http.StatusServiceUnavailable},
		{dto.ErrCodeRenderFailed, http.StatusInternalServerError},
		{"unknown", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	resp := dto.NewErrorResponseWithDetails(dto.ErrCodeExtractionFailed, "bad reply", "req-1", map[string]string{"raw": "x"})
	assert.False(t, resp.Success)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Equal(t, map[string]string{"raw": "x"}, resp.Error.Details)
}

func TestNewListResponse(t *testing.T) {
	resp := dto.NewListResponse([]int{1, 2}, 2, 50)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Meta.Count)
	assert.Equal(t, 50, resp.Meta.Limit)
}
