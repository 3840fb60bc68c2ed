package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

// Profiling label keys
const (
	ProfilingLabelMethod = "http_method"
	ProfilingLabelRoute  = "http_route"
)

// Profiling tags CPU samples taken while serving a request with its method
// and route pattern
func Profiling() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			c.Next()
			return
		}
		labels := map[string]string{
			ProfilingLabelMethod: c.Request.Method,
			ProfilingLabelRoute:  route,
		}
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
