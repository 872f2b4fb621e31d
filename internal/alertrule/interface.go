package alertrule

import (
	"context"

	"smap-engine/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (RuleOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (RuleOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetRuleOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (RuleOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// CheckMention evaluates an inbound mention against the tenant's active
	// rules and returns the alert events it triggered.
	CheckMention(ctx context.Context, sc model.Scope, mention model.Mention) ([]model.AlertEvent, error)

	UpdateEventStatus(ctx context.Context, sc model.Scope, ip UpdateEventStatusInput) (EventOutput, error)
}
