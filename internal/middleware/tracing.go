package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Tracing starts a server span per request using the global tracer provider.
func (m Middleware) Tracing(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
