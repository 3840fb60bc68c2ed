package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSystemRouter(h *SystemHandler) *gin.Engine {
	engine := gin.New()
	h.RegisterRoutes(&engine.RouterGroup)
	return engine
}

func TestSystemHandler_Health(t *testing.T) {
	router := newSystemRouter(NewSystemHandler(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "ok", resp.Data.(map[string]any)["status"])
}

func TestSystemHandler_Ready(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") })

	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantStatus int
		wantChecks map[string]any
	}{
		{
			name:       "all up",
			checks:     map[string]Pinger{"database": up, "redis": up},
			wantStatus: http.StatusOK,
			wantChecks: map[string]any{"database": "up", "redis": "up"},
		},
		{
			name:       "redis down",
			checks:     map[string]Pinger{"database": up, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]any{"database": "up", "redis": "down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSystemRouter(NewSystemHandler(tt.checks))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			data := resp.Data.(map[string]any)
			assert.Equal(t, tt.wantChecks, data["checks"])
		})
	}
}
