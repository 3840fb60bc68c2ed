package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/infrastructure/auth"
	"github.com/zumech/backend/internal/infrastructure/config"
	"github.com/zumech/backend/internal/interfaces/http/dto"
)

func newAuthRouter(t *testing.T, svc *auth.TokenService, webhookSecret string) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(RequestID(), BearerAuth(BearerAuthConfig{
		Validator:    svc,
		SkipPaths:    []string{"/health"},
		SkipPrefixes: []string{"/swagger"},
		Skip: func(c *gin.Context) bool {
			return c.Request.URL.Path == "/api/v1/whatsapp" && HasWebhookSecret(c, webhookSecret)
		},
	}))
	handler := func(c *gin.Context) { c.String(http.StatusOK, GetTokenSubject(c)) }
	r.GET("/health", handler)
	r.GET("/swagger/index.html", handler)
	r.GET("/api/v1/challan", handler)
	r.POST("/api/v1/whatsapp", handler)
	return r
}

func newTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService(config.JWTConfig{Secret: "middleware-test-secret-32-chars!!", Issuer: "zumech"})
	require.NoError(t, err)
	return svc
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestBearerAuth(t *testing.T) {
	svc := newTokenService(t)
	r := newAuthRouter(t, svc, "hook-secret")

	t.Run("valid token", func(t *testing.T) {
		issued, err := svc.Issue("ops", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/challan", nil)
		req.Header.Set(AuthHeader, BearerPrefix+issued.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops", w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/challan", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeUnauthorized, errorCode(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/challan", nil)
		req.Header.Set(AuthHeader, BearerPrefix+"garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenInvalid, errorCode(t, w))
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := newTokenService(t)
		issuer.SetClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		issued, err := issuer.Issue("ops", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/challan", nil)
		req.Header.Set(AuthHeader, BearerPrefix+issued.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenExpired, errorCode(t, w))
	})

	t.Run("skipped paths", func(t *testing.T) {
		for _, path := range []string{"/health", "/swagger/index.html"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("webhook secret replaces the token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/whatsapp", nil)
		req.Header.Set(WebhookSecretHeader, "hook-secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/v1/whatsapp", nil)
		req.Header.Set(WebhookSecretHeader, "wrong")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestWebhookSecret(t *testing.T) {
	route := func(secret string) *gin.Engine {
		r := gin.New()
		r.POST("/hook", WebhookSecret(secret), func(c *gin.Context) { c.Status(http.StatusCreated) })
		return r
	}

	t.Run("open without a secret", func(t *testing.T) {
		w := httptest.NewRecorder()
		route("").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects a wrong secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		req.Header.Set(WebhookSecretHeader, "nope")
		w := httptest.NewRecorder()
		route("s3cret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts the secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		req.Header.Set(WebhookSecretHeader, "s3cret")
		w := httptest.NewRecorder()
		route("s3cret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
