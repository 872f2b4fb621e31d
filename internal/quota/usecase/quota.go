package usecase

import (
	"context"
	"time"

	"smap-engine/internal/model"
	"smap-engine/internal/quota"
	"smap-engine/internal/quota/repository"
	"smap-engine/pkg/period"
)

func (uc *usecase) Recompute(ctx context.Context, sc model.Scope, quotaID string) (quota.QuotaOutput, error) {
	q, err := uc.repo.Detail(ctx, sc, quotaID)
	if err != nil {
		if err == repository.ErrNotFound {
			return quota.QuotaOutput{}, quota.ErrQuotaNotFound
		}
		uc.l.Errorf(ctx, "internal.quota.usecase.Recompute.Detail: %v", err)
		return quota.QuotaOutput{}, err
	}

	subs, err := uc.repo.ListSubmissions(ctx, sc, q.FormID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.quota.usecase.Recompute.ListSubmissions: %v", err)
		return quota.QuotaOutput{}, err
	}

	now := uc.clock()
	count := 0
	for _, sub := range subs {
		if !sub.Countable() {
			continue
		}
		if !uc.inCurrentPeriod(q.ResetPeriod, sub.CreatedAt, now) {
			continue
		}
		if uc.matcher.Matches(ctx, sub.Data, q.Criteria) {
			count++
		}
	}

	if err := uc.repo.UpdateCurrentCount(ctx, sc, repository.UpdateCountOptions{
		QuotaID:      q.ID,
		CurrentCount: count,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.quota.usecase.Recompute.UpdateCurrentCount: %v", err)
		return quota.QuotaOutput{}, err
	}

	q.CurrentCount = count
	return quota.QuotaOutput{Quota: q}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, formID string) ([]model.Quota, error) {
	quotas, err := uc.repo.List(ctx, sc, repository.ListOptions{FormID: formID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.quota.usecase.List: %v", err)
		return nil, err
	}

	now := uc.clock()
	keys := make([]repository.CounterKey, 0, len(quotas))
	for _, q := range quotas {
		if key, ok := period.Key(q.ResetPeriod, now); ok {
			keys = append(keys, repository.CounterKey{QuotaID: q.ID, PeriodKey: key})
		}
	}
	if len(keys) == 0 {
		return quotas, nil
	}

	counts, err := uc.counters.GetMany(ctx, keys)
	if err != nil {
		uc.l.Errorf(ctx, "internal.quota.usecase.List.GetMany: %v", err)
		return nil, err
	}

	// Periodic quotas display the live counter for the current bucket; an
	// absent counter means nothing happened this bucket yet.
	for i := range quotas {
		if period.IsPeriodic(quotas[i].ResetPeriod) {
			quotas[i].CurrentCount = int(counts[quotas[i].ID])
		}
	}

	return quotas, nil
}

func (uc *usecase) IncrementCounters(ctx context.Context, sc model.Scope, submission model.Submission) error {
	quotas, err := uc.repo.List(ctx, sc, repository.ListOptions{
		FormID:     submission.FormID,
		OnlyActive: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.quota.usecase.IncrementCounters.List: %v", err)
		return err
	}

	now := uc.clock()
	for _, q := range quotas {
		key, ok := period.Key(q.ResetPeriod, now)
		if !ok {
			continue
		}
		if !q.InValidityWindow(now) {
			continue
		}
		if !uc.matcher.Matches(ctx, submission.Data, q.Criteria) {
			continue
		}

		if _, err := uc.counters.Increment(ctx, q.ID, key, counterTTL(q.ResetPeriod)); err != nil {
			uc.l.Errorf(ctx, "internal.quota.usecase.IncrementCounters.Increment: %v (quota %s)", err, q.ID)
			return err
		}
	}

	return nil
}

func (uc *usecase) inCurrentPeriod(resetPeriod string, at, now time.Time) bool {
	if !period.IsPeriodic(resetPeriod) {
		return true
	}
	return period.SameBucket(resetPeriod, at, now)
}

// counterTTL keeps a counter alive for roughly two buckets, so a stale
// counter from the previous period expires on its own.
func counterTTL(resetPeriod string) time.Duration {
	switch resetPeriod {
	case period.Daily:
		return 48 * time.Hour
	case period.Weekly:
		return 14 * 24 * time.Hour
	case period.Monthly:
		return 62 * 24 * time.Hour
	default:
		return 0
	}
}
