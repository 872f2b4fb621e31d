package http

import (
	"smap-engine/internal/model"
	pkgErrors "smap-engine/pkg/errors"
	"smap-engine/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) scopeFromContext(c *gin.Context) (model.Scope, error) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.NewUnauthorizedHTTPError()
	}

	return model.Scope{
		TenantID: payload.TenantID,
		UserID:   payload.UserID,
		Role:     payload.Role,
	}, nil
}

func (h *Handler) processIngestSubmissionRequest(c *gin.Context) (model.Scope, model.Submission, error) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, model.Submission{}, err
	}

	var req ingestSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.quota.delivery.http.processIngestSubmissionRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, model.Submission{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		return model.Scope{}, model.Submission{}, err
	}

	return sc, req.toSubmission(), nil
}
