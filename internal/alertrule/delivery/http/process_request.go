package http

import (
	"smap-engine/internal/alertrule"
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

func (h *Handler) processCreateRuleRequest(c *gin.Context) (model.Scope, alertrule.CreateInput, error) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, alertrule.CreateInput{}, err
	}

	var req createRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertrule.delivery.http.processCreateRuleRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, alertrule.CreateInput{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		return model.Scope{}, alertrule.CreateInput{}, err
	}

	return sc, req.toInput(), nil
}

func (h *Handler) processUpdateRuleRequest(c *gin.Context) (model.Scope, alertrule.UpdateInput, error) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, alertrule.UpdateInput{}, err
	}

	var req updateRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertrule.delivery.http.processUpdateRuleRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, alertrule.UpdateInput{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		return model.Scope{}, alertrule.UpdateInput{}, err
	}

	return sc, req.toInput(c.Param("ruleID")), nil
}

func (h *Handler) processListRulesRequest(c *gin.Context) (model.Scope, alertrule.GetInput, error) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, alertrule.GetInput{}, err
	}

	var req listRulesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertrule.delivery.http.processListRulesRequest.ShouldBindQuery: %v", err)
		return model.Scope{}, alertrule.GetInput{}, errWrongQuery
	}

	ip := req.toInput()
	ip.PaginateQuery.Adjust()

	return sc, ip, nil
}

func (h *Handler) processCheckMentionRequest(c *gin.Context) (model.Scope, model.Mention, error) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, model.Mention{}, err
	}

	var req checkMentionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertrule.delivery.http.processCheckMentionRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, model.Mention{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		return model.Scope{}, model.Mention{}, err
	}

	return sc, req.toMention(sc.TenantID), nil
}

func (h *Handler) processUpdateEventStatusRequest(c *gin.Context) (model.Scope, alertrule.UpdateEventStatusInput, error) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, alertrule.UpdateEventStatusInput{}, err
	}

	var req updateEventStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertrule.delivery.http.processUpdateEventStatusRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, alertrule.UpdateEventStatusInput{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		return model.Scope{}, alertrule.UpdateEventStatusInput{}, err
	}

	return sc, alertrule.UpdateEventStatusInput{
		ID:     c.Param("eventID"),
		Status: req.Status,
	}, nil
}
