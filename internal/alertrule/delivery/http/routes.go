package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the alert rule, alert event and mention routes.
// Auth is applied by the caller at the group level.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rules := r.Group("/alert-rules")
	{
		rules.POST("", h.CreateRule)
		rules.GET("", h.ListRules)
		rules.GET("/:ruleID", h.DetailRule)
		rules.PUT("/:ruleID", h.UpdateRule)
		rules.DELETE("/:ruleID", h.DeleteRule)
	}

	events := r.Group("/alert-events")
	{
		events.PATCH("/:eventID/status", h.UpdateEventStatus)
	}

	mentions := r.Group("/mentions")
	{
		mentions.POST("/check", h.CheckMention)
	}
}
