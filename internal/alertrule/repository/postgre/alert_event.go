package postgres

import (
	"context"
	"database/sql"

	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
	"smap-engine/internal/sqlboiler"
	postgresPkg "smap-engine/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
)

func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opts repository.CreateEventOptions) (model.AlertEvent, error) {
	event := opts.Event
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.TenantID = sc.TenantID

	dbEvent, err := event.ToDBAlertEvent()
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.CreateEvent.ToDBAlertEvent: %v", err)
		return model.AlertEvent{}, err
	}

	if err := dbEvent.Insert(ctx, r.db, boil.Infer()); err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.CreateEvent.Insert: %v", err)
		return model.AlertEvent{}, err
	}

	created, err := model.NewAlertEventFromDB(dbEvent)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.CreateEvent.NewAlertEventFromDB: %v", err)
		return model.AlertEvent{}, err
	}

	return *created, nil
}

func (r *implRepository) UpdateEventStatus(ctx context.Context, sc model.Scope, opts repository.UpdateEventStatusOptions) (model.AlertEvent, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.UpdateEventStatus.IsUUID: %v", err)
		return model.AlertEvent{}, err
	}

	dbEvent, err := sqlboiler.AlertEvents(
		sqlboiler.AlertEventWhere.ID.EQ(opts.ID),
		sqlboiler.AlertEventWhere.TenantID.EQ(sc.TenantID),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AlertEvent{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.UpdateEventStatus.One: %v", err)
		return model.AlertEvent{}, err
	}

	if dbEvent.Status != model.AlertEventStatusPending {
		return model.AlertEvent{}, repository.ErrNotPending
	}

	dbEvent.Status = opts.Status
	dbEvent.ActionedBy = null.StringFrom(opts.ActionedBy)
	dbEvent.ActionedAt = null.TimeFrom(opts.ActionedAt)

	rows, err := dbEvent.Update(ctx, r.db, boil.Whitelist(
		sqlboiler.AlertEventColumns.Status,
		sqlboiler.AlertEventColumns.ActionedBy,
		sqlboiler.AlertEventColumns.ActionedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.UpdateEventStatus.Update: %v", err)
		return model.AlertEvent{}, err
	}
	if rows == 0 {
		return model.AlertEvent{}, repository.ErrNotFound
	}

	updated, err := model.NewAlertEventFromDB(dbEvent)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertrule.repository.postgres.UpdateEventStatus.NewAlertEventFromDB: %v", err)
		return model.AlertEvent{}, err
	}

	return *updated, nil
}
