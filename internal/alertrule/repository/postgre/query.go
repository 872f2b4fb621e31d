package postgres

import (
	"context"

	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/sqlboiler"
	"smap-engine/pkg/paginator"
	postgresPkg "smap-engine/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildGetQuery(ctx context.Context, tenantID string, opts repository.GetOptions, pq paginator.PaginateQuery) ([]qm.QueryMod, error) {
	mods, err := r.buildFilterQuery(ctx, tenantID, opts.Filter)
	if err != nil {
		return nil, err
	}

	pq.Adjust()
	mods = append(mods,
		qm.Limit(int(pq.Limit)),
		qm.Offset(int(pq.Offset())),
		qm.OrderBy(sqlboiler.AlertRuleColumns.CreatedAt+" DESC"),
	)

	return mods, nil
}

func (r *implRepository) buildFilterQuery(ctx context.Context, tenantID string, filter repository.Filter) ([]qm.QueryMod, error) {
	mods := []qm.QueryMod{
		sqlboiler.AlertRuleWhere.TenantID.EQ(tenantID),
		sqlboiler.AlertRuleWhere.DeletedAt.IsNull(),
	}

	if len(filter.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(filter.IDs); err != nil {
			r.l.Errorf(ctx, "internal.alertrule.repository.postgres.buildFilterQuery.ValidateUUIDs: %v", err)
			return nil, err
		}
		mods = append(mods, sqlboiler.AlertRuleWhere.ID.IN(filter.IDs))
	}

	if filter.RuleType != "" {
		mods = append(mods, sqlboiler.AlertRuleWhere.RuleType.EQ(filter.RuleType))
	}

	if filter.IsActive != nil {
		mods = append(mods, sqlboiler.AlertRuleWhere.IsActive.EQ(*filter.IsActive))
	}

	return mods, nil
}
