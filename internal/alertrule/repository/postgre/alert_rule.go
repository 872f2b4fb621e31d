package postgres

import (
	"context"
	"database/sql"

	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
	"smap-engine/internal/sqlboiler"
	"smap-engine/pkg/paginator"
	postgresPkg "smap-engine/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/google/uuid"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.AlertRule, paginator.Paginator, error) {
	mods, err := r.buildGetQuery(ctx, sc.TenantID, opts, opts.PaginateQuery)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Get.buildGetQuery: %v", err)
		return nil, paginator.Paginator{}, err
	}

	cntMods, err := r.buildFilterQuery(ctx, sc.TenantID, opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Get.buildFilterQuery: %v", err)
		return nil, paginator.Paginator{}, err
	}

	total, err := sqlboiler.AlertRules(cntMods...).Count(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	dbRules, err := sqlboiler.AlertRules(mods...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Get.All: %v", err)
		return nil, paginator.Paginator{}, err
	}

	rules, err := r.toDomainRules(ctx, dbRules)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	opts.PaginateQuery.Adjust()
	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(rules)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return rules, pag, nil
}

func (r *implRepository) ListActive(ctx context.Context, sc model.Scope) ([]model.AlertRule, error) {
	dbRules, err := sqlboiler.AlertRules(
		sqlboiler.AlertRuleWhere.TenantID.EQ(sc.TenantID),
		sqlboiler.AlertRuleWhere.IsActive.EQ(true),
		sqlboiler.AlertRuleWhere.DeletedAt.IsNull(),
	).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.ListActive.All: %v", err)
		return nil, err
	}

	return r.toDomainRules(ctx, dbRules)
}

func (r *implRepository) ListActiveByType(ctx context.Context, ruleType string) ([]model.AlertRule, error) {
	dbRules, err := sqlboiler.AlertRules(
		sqlboiler.AlertRuleWhere.RuleType.EQ(ruleType),
		sqlboiler.AlertRuleWhere.IsActive.EQ(true),
		sqlboiler.AlertRuleWhere.DeletedAt.IsNull(),
	).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.ListActiveByType.All: %v", err)
		return nil, err
	}

	return r.toDomainRules(ctx, dbRules)
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Detail.IsUUID: %v", err)
		return model.AlertRule{}, err
	}

	dbRule, err := sqlboiler.AlertRules(
		sqlboiler.AlertRuleWhere.ID.EQ(id),
		sqlboiler.AlertRuleWhere.TenantID.EQ(sc.TenantID),
		sqlboiler.AlertRuleWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AlertRule{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Detail.One: %v", err)
		return model.AlertRule{}, err
	}

	rule, err := model.NewAlertRuleFromDB(dbRule)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Detail.NewAlertRuleFromDB: %v", err)
		return model.AlertRule{}, err
	}

	return *rule, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.AlertRule, error) {
	rule := opts.Rule
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	rule.TenantID = sc.TenantID

	dbRule, err := rule.ToDBAlertRule()
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Create.ToDBAlertRule: %v", err)
		return model.AlertRule{}, err
	}

	if err := dbRule.Insert(ctx, r.db, boil.Infer()); err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Create.Insert: %v", err)
		return model.AlertRule{}, err
	}

	created, err := model.NewAlertRuleFromDB(dbRule)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Create.NewAlertRuleFromDB: %v", err)
		return model.AlertRule{}, err
	}

	return *created, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.AlertRule, error) {
	if err := postgresPkg.IsUUID(opts.Rule.ID); err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Update.IsUUID: %v", err)
		return model.AlertRule{}, err
	}

	existing, err := sqlboiler.AlertRules(
		sqlboiler.AlertRuleWhere.ID.EQ(opts.Rule.ID),
		sqlboiler.AlertRuleWhere.TenantID.EQ(sc.TenantID),
		sqlboiler.AlertRuleWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AlertRule{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Update.Find: %v", err)
		return model.AlertRule{}, err
	}

	dbRule, err := opts.Rule.ToDBAlertRule()
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Update.ToDBAlertRule: %v", err)
		return model.AlertRule{}, err
	}

	// Trigger bookkeeping is written only by RecordTrigger.
	dbRule.TenantID = existing.TenantID
	dbRule.CreatedBy = existing.CreatedBy
	dbRule.CreatedAt = existing.CreatedAt
	dbRule.TriggerCount = existing.TriggerCount
	dbRule.LastTriggeredAt = existing.LastTriggeredAt

	rows, err := dbRule.Update(ctx, r.db, boil.Infer())
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Update.Update: %v", err)
		return model.AlertRule{}, err
	}
	if rows == 0 {
		return model.AlertRule{}, repository.ErrNotFound
	}

	updated, err := model.NewAlertRuleFromDB(dbRule)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Update.NewAlertRuleFromDB: %v", err)
		return model.AlertRule{}, err
	}

	return *updated, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	dbRule, err := sqlboiler.AlertRules(
		sqlboiler.AlertRuleWhere.ID.EQ(id),
		sqlboiler.AlertRuleWhere.TenantID.EQ(sc.TenantID),
		sqlboiler.AlertRuleWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Delete.Find: %v", err)
		return err
	}

	dbRule.DeletedAt = null.TimeFrom(r.clock())
	rows, err := dbRule.Update(ctx, r.db, boil.Whitelist(sqlboiler.AlertRuleColumns.DeletedAt))
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.Delete.Update: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// RecordTrigger bumps trigger_count and advances last_triggered_at in one
// statement so concurrent triggers never lose an increment.
func (r *implRepository) RecordTrigger(ctx context.Context, sc model.Scope, opts repository.RecordTriggerOptions) error {
	q := queries.Raw(
		`UPDATE "alert_rules"
		 SET "trigger_count" = "trigger_count" + 1, "last_triggered_at" = $1, "updated_at" = $1
		 WHERE "id" = $2 AND "tenant_id" = $3`,
		opts.At,
		opts.RuleID,
		sc.TenantID,
	)

	result, err := q.ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.RecordTrigger.Exec: %v", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.RecordTrigger.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) toDomainRules(ctx context.Context, dbRules sqlboiler.AlertRuleSlice) ([]model.AlertRule, error) {
	rules := make([]model.AlertRule, 0, len(dbRules))
	for _, dbRule := range dbRules {
		rule, err := model.NewAlertRuleFromDB(dbRule)
		if err != nil {
			r.l.Errorf(ctx, "internal.alertrule.repository.postgres.toDomainRules.NewAlertRuleFromDB: %v (rule %s)", err, dbRule.ID)
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}
