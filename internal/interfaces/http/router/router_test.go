package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var order []string

	challans := NewDomainGroup("challan", "").
		GET("/challan", func(c *gin.Context) { c.String(http.StatusOK, "list") }).
		GET("/challan-companies", func(c *gin.Context) { c.String(http.StatusOK, "companies") })
	invoices := NewDomainGroup("invoice", "/invoice").
		Use(func(c *gin.Context) { order = append(order, "group"); c.Next() }).
		PATCH("", func(c *gin.Context) { order = append(order, "handler"); c.Status(http.StatusOK) })

	NewRouter(engine, WithMiddleware(func(c *gin.Context) { order = append(order, "api"); c.Next() })).
		Register(challans, invoices).
		Setup()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/challan", http.StatusOK},
		{http.MethodGet, "/api/v1/challan-companies", http.StatusOK},
		{http.MethodPatch, "/api/v1/invoice", http.StatusOK},
		{http.MethodGet, "/api/v2/challan", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
	}
	assert.Equal(t, []string{"api", "api", "api", "group", "handler"}, order)
}

func TestDomainGroupPaths(t *testing.T) {
	h := func(c *gin.Context) {}
	dg := NewDomainGroup("quotation", "/quotation").GET("", h).POST("", h).GET("/:id/pdf", h)

	assert.Equal(t, "quotation", dg.Name())
	assert.Equal(t, "/quotation", dg.Prefix())
	assert.Equal(t, []string{
		"GET /quotation",
		"POST /quotation",
		"GET /quotation/:id/pdf",
	}, dg.Paths())
}
