package http

import (
	"github.com/gin-gonic/gin"

	"catalog-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.RateLimit())
	{
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
