package postgres

import (
	"context"

	"smap-engine/internal/action/repository"
	"smap-engine/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/google/uuid"
)

// The ctl_alerts table is owned by the control tower service, so there is no
// generated model for it here. Inserts go through a raw query.
func (r *implRepository) CreateCtlAlert(ctx context.Context, sc model.Scope, opts repository.CreateCtlAlertOptions) error {
	q := queries.Raw(
		`INSERT INTO "ctl_alerts" ("id", "tenant_id", "severity", "score_value", "score_type", "sentiment", "subject_id", "source_channel", "created_at")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.NewString(),
		sc.TenantID,
		opts.Severity,
		opts.ScoreValue,
		opts.ScoreType,
		opts.Sentiment,
		opts.SubjectID,
		opts.SourceChannel,
		r.clock(),
	)

	if _, err := q.ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.action.repository.postgres.CreateCtlAlert.Exec: %v", err)
		return err
	}

	return nil
}
