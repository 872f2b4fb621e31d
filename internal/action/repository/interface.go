package repository

import (
	"context"

	"smap-engine/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateTicket(ctx context.Context, sc model.Scope, opts CreateTicketOptions) (model.Ticket, error)
	CreateCtlAlert(ctx context.Context, sc model.Scope, opts CreateCtlAlertOptions) error
}
