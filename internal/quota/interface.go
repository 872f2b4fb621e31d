package quota

import (
	"context"

	"smap-engine/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Recompute rebuilds a quota's current_count from the full submission
	// history. It runs on quota create/update, not on every submission.
	Recompute(ctx context.Context, sc model.Scope, quotaID string) (QuotaOutput, error)

	// List returns a form's quotas with periodic counts overlaid from the
	// live period counters.
	List(ctx context.Context, sc model.Scope, formID string) ([]model.Quota, error)

	// IncrementCounters bumps the period counter of every active periodic
	// quota whose criteria match the submission. It runs on the ingestion
	// path.
	IncrementCounters(ctx context.Context, sc model.Scope, submission model.Submission) error
}
