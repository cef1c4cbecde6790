package http

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires an API key and is rate limited per key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth(), mw.RateLimit())
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.PATCH("/:id", h.Patch)
		items.DELETE("/:id", h.Delete)
	}
}
