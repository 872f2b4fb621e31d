package http

import (
	"smap-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateRule creates an alert rule for the calling tenant.
func (h *Handler) CreateRule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ip, err := h.processCreateRuleRequest(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	o, err := h.uc.Create(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.CreateRule.Create: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.Created(c, newRuleResp(o.Rule))
}

// ListRules returns the tenant's alert rules, filtered and paginated.
func (h *Handler) ListRules(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ip, err := h.processListRulesRequest(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.ListRules.Get: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newListRulesResp(o))
}

// DetailRule returns one alert rule by ID.
func (h *Handler) DetailRule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	o, err := h.uc.Detail(ctx, sc, c.Param("ruleID"))
	if err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.DetailRule.Detail: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newRuleResp(o.Rule))
}

// UpdateRule updates an alert rule's mutable fields.
func (h *Handler) UpdateRule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ip, err := h.processUpdateRuleRequest(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	o, err := h.uc.Update(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.UpdateRule.Update: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newRuleResp(o.Rule))
}

// DeleteRule soft-deletes an alert rule.
func (h *Handler) DeleteRule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("ruleID")); err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.DeleteRule.Delete: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CheckMention evaluates an inbound mention against the tenant's active rules
// and returns the alert events it triggered.
func (h *Handler) CheckMention(c *gin.Context) {
	ctx := c.Request.Context()

	sc, mention, err := h.processCheckMentionRequest(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	events, err := h.uc.CheckMention(ctx, sc, mention)
	if err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.CheckMention.CheckMention: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newCheckMentionResp(events))
}

// UpdateEventStatus marks a pending alert event actioned or dismissed.
func (h *Handler) UpdateEventStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ip, err := h.processUpdateEventStatusRequest(c)
	if err != nil {
		response.HttpError(c, err)
		return
	}

	o, err := h.uc.UpdateEventStatus(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.alertrule.delivery.http.UpdateEventStatus.UpdateEventStatus: %v", err)
		response.HttpError(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(o.Event))
}
