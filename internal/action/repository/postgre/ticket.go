package postgres

import (
	"context"

	"smap-engine/internal/action/repository"
	"smap-engine/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/google/uuid"
)

const ticketStatusOpen = "open"

// The tickets table is owned by the support service, so there is no
// generated model for it here. Inserts go through a raw query.
func (r *implRepository) CreateTicket(ctx context.Context, sc model.Scope, opts repository.CreateTicketOptions) (model.Ticket, error) {
	ticket := model.Ticket{
		ID:          uuid.NewString(),
		TenantID:    sc.TenantID,
		Code:        opts.Code,
		Title:       opts.Title,
		Description: opts.Description,
		Priority:    opts.Priority,
		Status:      ticketStatusOpen,
		CreatedAt:   r.clock(),
	}

	q := queries.Raw(
		`INSERT INTO "tickets" ("id", "tenant_id", "code", "title", "description", "priority", "status", "created_at")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ticket.ID,
		ticket.TenantID,
		ticket.Code,
		ticket.Title,
		ticket.Description,
		ticket.Priority,
		ticket.Status,
		ticket.CreatedAt,
	)

	if _, err := q.ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.action.repository.postgres.CreateTicket.Exec: %v", err)
		return model.Ticket{}, err
	}

	return ticket, nil
}
