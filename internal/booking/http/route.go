package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/availability", h.Availability)
		group.GET("/report", h.Report)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Delete)
	}
}
