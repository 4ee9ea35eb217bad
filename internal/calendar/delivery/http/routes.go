package http

import (
	"github.com/gin-gonic/gin"

	"calendar-grid/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Writes are rate
// limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/range", h.Range)
	rg.GET("/slots", h.Slots)
	rg.GET("/export.ics", h.ExportICS)

	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", mw.RateLimit(), h.CreateEvent)
		events.POST("/from-selection", mw.RateLimit(), h.CreateFromSelection)
	}

	selections := rg.Group("/selections")
	{
		selections.POST("", h.BeginSelection)
		selections.POST("/click", h.ClickSelection)
		selections.PATCH("/:id", h.MoveSelection)
		selections.POST("/:id/release", h.ReleaseSelection)
		selections.DELETE("/:id", h.CancelSelection)
	}
}
