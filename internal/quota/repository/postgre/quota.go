package postgres

import (
	"context"
	"database/sql"

	"smap-engine/internal/model"
	"smap-engine/internal/quota/repository"
	"smap-engine/internal/sqlboiler"
	postgresPkg "smap-engine/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Quota, error) {
	mods := []qm.QueryMod{
		sqlboiler.QuotaWhere.FormID.EQ(opts.FormID),
		sqlboiler.QuotaWhere.DeletedAt.IsNull(),
		qm.OrderBy(sqlboiler.QuotaColumns.CreatedAt + " ASC"),
	}
	if opts.OnlyActive {
		mods = append(mods, sqlboiler.QuotaWhere.IsActive.EQ(true))
	}

	dbQuotas, err := sqlboiler.Quotas(mods...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.quota.repository.postgres.List.All: %v", err)
		return nil, err
	}

	quotas := make([]model.Quota, len(dbQuotas))
	for i, q := range dbQuotas {
		quotas[i] = *model.NewQuotaFromDB(q)
	}

	return quotas, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Quota, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.quota.repository.postgres.Detail.IsUUID: %v", err)
		return model.Quota{}, err
	}

	dbQuota, err := sqlboiler.Quotas(
		sqlboiler.QuotaWhere.ID.EQ(id),
		sqlboiler.QuotaWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Quota{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.quota.repository.postgres.Detail.One: %v", err)
		return model.Quota{}, err
	}

	return *model.NewQuotaFromDB(dbQuota), nil
}

func (r *implRepository) UpdateCurrentCount(ctx context.Context, sc model.Scope, opts repository.UpdateCountOptions) error {
	dbQuota, err := sqlboiler.Quotas(
		sqlboiler.QuotaWhere.ID.EQ(opts.QuotaID),
		sqlboiler.QuotaWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.quota.repository.postgres.UpdateCurrentCount.One: %v", err)
		return err
	}

	dbQuota.CurrentCount = opts.CurrentCount
	rows, err := dbQuota.Update(ctx, r.db, boil.Whitelist(
		sqlboiler.QuotaColumns.CurrentCount,
		sqlboiler.QuotaColumns.UpdatedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "internal.quota.repository.postgres.UpdateCurrentCount.Update: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) ListSubmissions(ctx context.Context, sc model.Scope, formID string) ([]model.Submission, error) {
	dbSubs, err := sqlboiler.FormSubmissions(
		sqlboiler.FormSubmissionWhere.FormID.EQ(formID),
		qm.OrderBy(sqlboiler.FormSubmissionColumns.CreatedAt+" ASC"),
	).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.quota.repository.postgres.ListSubmissions.All: %v", err)
		return nil, err
	}

	subs := make([]model.Submission, 0, len(dbSubs))
	for _, s := range dbSubs {
		sub, err := model.NewSubmissionFromDB(s)
		if err != nil {
			r.l.Errorf(ctx, "internal.quota.repository.postgres.ListSubmissions.NewSubmissionFromDB: %v (submission %s)", err, s.ID)
			return nil, err
		}
		subs = append(subs, *sub)
	}

	return subs, nil
}
