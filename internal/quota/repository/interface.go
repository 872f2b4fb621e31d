package repository

import (
	"context"
	"time"

	"smap-engine/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Quota, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Quota, error)
	UpdateCurrentCount(ctx context.Context, sc model.Scope, opts UpdateCountOptions) error
	ListSubmissions(ctx context.Context, sc model.Scope, formID string) ([]model.Submission, error)
}

// CounterRepository is the period-counter store. Counters are ephemeral and
// derived; losing one only degrades the displayed count until the next
// recompute.
//
//go:generate mockery --name CounterRepository
type CounterRepository interface {
	Increment(ctx context.Context, quotaID, periodKey string, ttl time.Duration) (int64, error)
	// GetMany reads the counters for the given (quota, period key) pairs in
	// one round trip, keyed by quota ID in the result. Absent counters are
	// omitted.
	GetMany(ctx context.Context, keys []CounterKey) (map[string]int64, error)
}

// CounterKey identifies one period counter.
type CounterKey struct {
	QuotaID   string
	PeriodKey string
}
