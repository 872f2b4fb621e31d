package usecase

import (
	"context"

	"smap-engine/internal/action"
)

func (uc *usecase) Dispatch(ctx context.Context, ip action.DispatchInput) {
	for _, act := range ip.Rule.Actions {
		handler, ok := uc.handlers[act.Type]
		if !ok {
			uc.l.Warnf(ctx, "internal.action.usecase.Dispatch: %v: %q (rule %s)", action.ErrUnknownActionType, act.Type, ip.Rule.ID)
			continue
		}

		if !ip.Allows(act.Type) {
			continue
		}

		if err := handler(ctx, ip, act.Config); err != nil {
			uc.l.Errorf(ctx, "internal.action.usecase.Dispatch.%s: %v (rule %s, event %s)", act.Type, err, ip.Rule.ID, ip.Event.ID)
		}
	}
}
