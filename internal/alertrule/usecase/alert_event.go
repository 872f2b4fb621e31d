package usecase

import (
	"context"

	"smap-engine/internal/alertrule"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
)

func (uc *usecase) UpdateEventStatus(ctx context.Context, sc model.Scope, ip alertrule.UpdateEventStatusInput) (alertrule.EventOutput, error) {
	if ip.Status != model.AlertEventStatusActioned && ip.Status != model.AlertEventStatusDismissed {
		return alertrule.EventOutput{}, alertrule.ErrInvalidStatus
	}

	event, err := uc.repo.UpdateEventStatus(ctx, sc, repository.UpdateEventStatusOptions{
		ID:         ip.ID,
		Status:     ip.Status,
		ActionedBy: sc.UserID,
		ActionedAt: uc.clock(),
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return alertrule.EventOutput{}, alertrule.ErrEventNotFound
		}
		if err == repository.ErrNotPending {
			return alertrule.EventOutput{}, alertrule.ErrEventNotPending
		}
		uc.l.Errorf(ctx, "internal.alertrule.usecase.UpdateEventStatus: %v", err)
		return alertrule.EventOutput{}, err
	}

	return alertrule.EventOutput{Event: event}, nil
}
