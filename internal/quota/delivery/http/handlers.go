package http

import (
	"smap-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListQuotas returns a form's quotas with live period counts overlaid.
func (h *Handler) ListQuotas(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	quotas, err := h.uc.List(ctx, sc, c.Param("formID"))
	if err != nil {
		h.l.Errorf(ctx, "internal.quota.delivery.http.ListQuotas.List: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newListQuotasResp(quotas))
}

// RecomputeQuota rebuilds a quota's current count from the full submission
// history and returns the updated quota.
func (h *Handler) RecomputeQuota(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	o, err := h.uc.Recompute(ctx, sc, c.Param("quotaID"))
	if err != nil {
		h.l.Errorf(ctx, "internal.quota.delivery.http.RecomputeQuota.Recompute: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newQuotaResp(o.Quota))
}

// IngestSubmission bumps the period counters of every active periodic quota
// matching the submission.
func (h *Handler) IngestSubmission(c *gin.Context) {
	ctx := c.Request.Context()

	sc, submission, err := h.processIngestSubmissionRequest(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	if err := h.uc.IncrementCounters(ctx, sc, submission); err != nil {
		h.l.Errorf(ctx, "internal.quota.delivery.http.IngestSubmission.IncrementCounters: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
