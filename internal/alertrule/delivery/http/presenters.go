package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"smap-engine/internal/alertrule"
	"smap-engine/internal/model"
	pkgErrors "smap-engine/pkg/errors"
	"smap-engine/pkg/paginator"
)

// --- Request DTOs ---

type createRuleReq struct {
	Name            string             `json:"name"`
	RuleType        string             `json:"rule_type"`
	Conditions      json.RawMessage    `json:"conditions"`
	Actions         []model.RuleAction `json:"actions"`
	Platforms       []string           `json:"platforms"`
	IsActive        *bool              `json:"is_active"`
	CooldownMinutes int                `json:"cooldown_minutes"`
}

func (r createRuleReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "name", "is required")
	}
	if strings.TrimSpace(r.RuleType) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "rule_type", "is required")
	}
	if len(r.Conditions) == 0 {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "conditions", "is required")
	}
	if r.CooldownMinutes < 0 {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "cooldown_minutes", "must not be negative")
	}
	return nil
}

func (r createRuleReq) toInput() alertrule.CreateInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return alertrule.CreateInput{
		Name:            r.Name,
		RuleType:        r.RuleType,
		Conditions:      r.Conditions,
		Actions:         r.Actions,
		Platforms:       r.Platforms,
		IsActive:        isActive,
		CooldownMinutes: r.CooldownMinutes,
	}
}

type updateRuleReq struct {
	Name            string             `json:"name"`
	Conditions      json.RawMessage    `json:"conditions"`
	Actions         []model.RuleAction `json:"actions"`
	Platforms       []string           `json:"platforms"`
	IsActive        *bool              `json:"is_active"`
	CooldownMinutes int                `json:"cooldown_minutes"`
}

func (r updateRuleReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "name", "is required")
	}
	if len(r.Conditions) == 0 {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "conditions", "is required")
	}
	if r.CooldownMinutes < 0 {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "cooldown_minutes", "must not be negative")
	}
	return nil
}

func (r updateRuleReq) toInput(id string) alertrule.UpdateInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return alertrule.UpdateInput{
		ID:              id,
		Name:            r.Name,
		Conditions:      r.Conditions,
		Actions:         r.Actions,
		Platforms:       r.Platforms,
		IsActive:        isActive,
		CooldownMinutes: r.CooldownMinutes,
	}
}

type listRulesReq struct {
	IDs      []string `form:"ids"`
	RuleType string   `form:"rule_type"`
	IsActive *bool    `form:"is_active"`
	paginator.PaginateQuery
}

func (r listRulesReq) toInput() alertrule.GetInput {
	return alertrule.GetInput{
		Filter: alertrule.Filter{
			IDs:      r.IDs,
			RuleType: r.RuleType,
			IsActive: r.IsActive,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type checkMentionReq struct {
	ID              string    `json:"id"`
	Platform        string    `json:"platform"`
	Content         string    `json:"content"`
	AuthorName      string    `json:"author_name"`
	AuthorHandle    string    `json:"author_handle"`
	AuthorFollowers int       `json:"author_followers"`
	AuthorVerified  bool      `json:"author_verified"`
	Sentiment       *string   `json:"sentiment"`
	SentimentScore  *float64  `json:"sentiment_score"`
	PublishedAt     time.Time `json:"published_at"`
}

func (r checkMentionReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "id", "is required")
	}
	if strings.TrimSpace(r.Platform) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "platform", "is required")
	}
	return nil
}

func (r checkMentionReq) toMention(tenantID string) model.Mention {
	publishedAt := r.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}

	return model.Mention{
		ID:              r.ID,
		TenantID:        tenantID,
		Platform:        r.Platform,
		Content:         r.Content,
		AuthorName:      r.AuthorName,
		AuthorHandle:    r.AuthorHandle,
		AuthorFollowers: r.AuthorFollowers,
		AuthorVerified:  r.AuthorVerified,
		Sentiment:       r.Sentiment,
		SentimentScore:  r.SentimentScore,
		PublishedAt:     publishedAt,
	}
}

type updateEventStatusReq struct {
	Status string `json:"status"`
}

func (r updateEventStatusReq) validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "status", "is required")
	}
	return nil
}

// --- Response DTOs ---

type ruleResp struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	RuleType        string             `json:"rule_type"`
	Conditions      json.RawMessage    `json:"conditions"`
	Actions         []model.RuleAction `json:"actions"`
	Platforms       []string           `json:"platforms,omitempty"`
	IsActive        bool               `json:"is_active"`
	CooldownMinutes int                `json:"cooldown_minutes"`
	LastTriggeredAt *time.Time         `json:"last_triggered_at,omitempty"`
	TriggerCount    int                `json:"trigger_count"`
	CreatedBy       string             `json:"created_by"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func newRuleResp(rule model.AlertRule) ruleResp {
	conditions, err := rule.Conditions.Raw()
	if err != nil {
		conditions = []byte("{}")
	}

	return ruleResp{
		ID:              rule.ID,
		Name:            rule.Name,
		RuleType:        rule.RuleType,
		Conditions:      conditions,
		Actions:         rule.Actions,
		Platforms:       rule.Platforms,
		IsActive:        rule.IsActive,
		CooldownMinutes: rule.CooldownMinutes,
		LastTriggeredAt: rule.LastTriggeredAt,
		TriggerCount:    rule.TriggerCount,
		CreatedBy:       rule.CreatedBy,
		CreatedAt:       rule.CreatedAt,
		UpdatedAt:       rule.UpdatedAt,
	}
}

type listRulesResp struct {
	Items     []ruleResp                  `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListRulesResp(o alertrule.GetRuleOutput) listRulesResp {
	items := make([]ruleResp, 0, len(o.Rules))
	for _, rule := range o.Rules {
		items = append(items, newRuleResp(rule))
	}

	return listRulesResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}

type eventResp struct {
	ID          string         `json:"id"`
	AlertRuleID string         `json:"alert_rule_id"`
	MentionID   *string        `json:"mention_id,omitempty"`
	EventType   string         `json:"event_type"`
	EventData   map[string]any `json:"event_data"`
	Status      string         `json:"status"`
	ActionedBy  *string        `json:"actioned_by,omitempty"`
	ActionedAt  *time.Time     `json:"actioned_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func newEventResp(event model.AlertEvent) eventResp {
	return eventResp{
		ID:          event.ID,
		AlertRuleID: event.AlertRuleID,
		MentionID:   event.MentionID,
		EventType:   event.EventType,
		EventData:   event.EventData,
		Status:      event.Status,
		ActionedBy:  event.ActionedBy,
		ActionedAt:  event.ActionedAt,
		CreatedAt:   event.CreatedAt,
	}
}

type checkMentionResp struct {
	TriggeredCount int         `json:"triggered_count"`
	Events         []eventResp `json:"events"`
}

func newCheckMentionResp(events []model.AlertEvent) checkMentionResp {
	items := make([]eventResp, 0, len(events))
	for _, event := range events {
		items = append(items, newEventResp(event))
	}

	return checkMentionResp{
		TriggeredCount: len(items),
		Events:         items,
	}
}
