package http

import (
	"github.com/gin-gonic/gin"

	"bakery-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/items", mw.RateLimit(), h.List)
	rg.PUT("/stock", mw.RateLimit(), h.UpdateStock)
}
