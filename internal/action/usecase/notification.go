package usecase

import (
	"context"

	"smap-engine/internal/action"
	"smap-engine/internal/model"
	"smap-engine/pkg/notifier"
)

func (uc *usecase) sendNotification(ctx context.Context, ip action.DispatchInput, cfg model.ActionConfig) error {
	userID := cfg.UserID
	if userID == "" {
		userID = ip.Rule.CreatedBy
	}

	title, message := summarize(ip)

	metadata := map[string]any{
		"alert_rule_id":  ip.Rule.ID,
		"alert_event_id": ip.Event.ID,
		"rule_type":      ip.Rule.RuleType,
	}
	if ip.Mention != nil {
		metadata["mention_id"] = ip.Mention.ID
	}

	if err := uc.notifier.Notify(ctx, notifier.NotifyInput{
		TenantID: ip.Rule.TenantID,
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     "alert",
		Link:     uc.eventLink(ip.Event.ID),
		Metadata: metadata,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.action.usecase.sendNotification.Notify: %v", err)
		return err
	}

	return nil
}
