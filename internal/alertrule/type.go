package alertrule

import (
	"encoding/json"

	"smap-engine/internal/model"
	"smap-engine/pkg/paginator"
)

type CreateInput struct {
	Name            string
	RuleType        string
	Conditions      json.RawMessage
	Actions         []model.RuleAction
	Platforms       []string
	IsActive        bool
	CooldownMinutes int
}

type UpdateInput struct {
	ID              string
	Name            string
	Conditions      json.RawMessage
	Actions         []model.RuleAction
	Platforms       []string
	IsActive        bool
	CooldownMinutes int
}

type Filter struct {
	IDs      []string
	RuleType string
	IsActive *bool
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type RuleOutput struct {
	Rule model.AlertRule
}

type GetRuleOutput struct {
	Rules     []model.AlertRule
	Paginator paginator.Paginator
}

type UpdateEventStatusInput struct {
	ID     string
	Status string
}

type EventOutput struct {
	Event model.AlertEvent
}
