package usecase

import (
	"context"
	"time"

	"smap-engine/internal/action"
	"smap-engine/internal/model"
)

type webhookPayload struct {
	AlertRuleID  string         `json:"alert_rule_id"`
	AlertEventID string         `json:"alert_event_id"`
	RuleName     string         `json:"rule_name"`
	RuleType     string         `json:"rule_type"`
	EventType    string         `json:"event_type"`
	EventData    map[string]any `json:"event_data,omitempty"`
	Mention      *model.Mention `json:"mention,omitempty"`
	TriggeredAt  string         `json:"triggered_at"`
}

func (uc *usecase) postWebhook(ctx context.Context, ip action.DispatchInput, cfg model.ActionConfig) error {
	if cfg.URL == "" {
		return action.ErrMissingWebhookURL
	}

	payload := webhookPayload{
		AlertRuleID:  ip.Rule.ID,
		AlertEventID: ip.Event.ID,
		RuleName:     ip.Rule.Name,
		RuleType:     ip.Rule.RuleType,
		EventType:    ip.Event.EventType,
		EventData:    ip.Event.EventData,
		Mention:      ip.Mention,
		TriggeredAt:  uc.clock().UTC().Format(time.RFC3339),
	}

	if err := uc.webhook.Post(ctx, cfg.URL, payload, cfg.Headers); err != nil {
		uc.l.Errorf(ctx, "internal.action.usecase.postWebhook.Post: %v", err)
		return err
	}

	return nil
}
