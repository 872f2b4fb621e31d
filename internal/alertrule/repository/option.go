package repository

import (
	"time"

	"smap-engine/internal/model"
	"smap-engine/pkg/paginator"
)

// Filter contains filtering options for alert rule queries.
type Filter struct {
	IDs      []string
	RuleType string
	IsActive *bool
}

// GetOptions contains options for paginated rule listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating an alert rule.
type CreateOptions struct {
	Rule model.AlertRule
}

// UpdateOptions contains options for updating an alert rule.
type UpdateOptions struct {
	Rule model.AlertRule
}

// RecordTriggerOptions contains the bookkeeping written after a trigger.
type RecordTriggerOptions struct {
	RuleID string
	At     time.Time
}

// CreateEventOptions contains options for persisting an alert event.
type CreateEventOptions struct {
	Event model.AlertEvent
}

// UpdateEventStatusOptions contains options for the manual status transition.
type UpdateEventStatusOptions struct {
	ID         string
	Status     string
	ActionedBy string
	ActionedAt time.Time
}

// CountMentionsOptions bounds a mention count to a published_at range.
// From is inclusive, To is exclusive.
type CountMentionsOptions struct {
	From time.Time
	To   time.Time
}
