package http

import (
	"github.com/gin-gonic/gin"

	"bakery-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	v := rg.Group("/view")
	{
		v.GET("", mw.RateLimit(), h.Window)
		v.PUT("/purchases", mw.RateLimit(), h.SetPurchase)
	}

	actions := rg.Group("/actions")
	{
		actions.POST("/generate-bill", mw.RateLimit(), h.GenerateBill)
		actions.POST("/place-order", mw.RateLimit(), h.PlaceOrder)
		actions.POST("/update-stock", mw.RateLimit(), h.UpdateStock)
		actions.POST("/exit", mw.RateLimit(), h.Exit)
	}
}
