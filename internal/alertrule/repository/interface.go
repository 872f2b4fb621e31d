package repository

import (
	"context"

	"smap-engine/internal/model"
	"smap-engine/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.AlertRule, paginator.Paginator, error)
	ListActive(ctx context.Context, sc model.Scope) ([]model.AlertRule, error)
	// ListActiveByType loads active rules of one type across all tenants.
	// Only the background spike sweep uses it; every per-request path is
	// tenant-scoped.
	ListActiveByType(ctx context.Context, ruleType string) ([]model.AlertRule, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.AlertRule, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.AlertRule, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	RecordTrigger(ctx context.Context, sc model.Scope, opts RecordTriggerOptions) error

	CreateEvent(ctx context.Context, sc model.Scope, opts CreateEventOptions) (model.AlertEvent, error)
	UpdateEventStatus(ctx context.Context, sc model.Scope, opts UpdateEventStatusOptions) (model.AlertEvent, error)

	CountMentionsInRange(ctx context.Context, sc model.Scope, opts CountMentionsOptions) (int64, error)
}
