package postgres

import (
	"context"

	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
	"smap-engine/internal/sqlboiler"
)

func (r *implRepository) CountMentionsInRange(ctx context.Context, sc model.Scope, opts repository.CountMentionsOptions) (int64, error) {
	count, err := sqlboiler.Mentions(
		sqlboiler.MentionWhere.TenantID.EQ(sc.TenantID),
		sqlboiler.MentionWhere.PublishedAt.GTE(opts.From),
		sqlboiler.MentionWhere.PublishedAt.LT(opts.To),
	).Count(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.CountMentionsInRange.Count: %v", err)
		return 0, err
	}

	return count, nil
}
