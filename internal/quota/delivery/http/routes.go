package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the quota and submission routes.
// Auth is applied by the caller at the group level.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	forms := r.Group("/forms")
	{
		forms.GET("/:formID/quotas", h.ListQuotas)
	}

	quotas := r.Group("/quotas")
	{
		quotas.POST("/:quotaID/recompute", h.RecomputeQuota)
	}

	submissions := r.Group("/submissions")
	{
		submissions.POST("/ingest", h.IngestSubmission)
	}
}
