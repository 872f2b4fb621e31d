package usecase

import (
	"context"

	"smap-engine/internal/action"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
)

func (uc *usecase) CheckMention(ctx context.Context, sc model.Scope, mention model.Mention) ([]model.AlertEvent, error) {
	rules, err := uc.repo.ListActive(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertrule.usecase.CheckMention.ListActive: %v", err)
		return nil, err
	}

	now := uc.clock()
	triggered := []model.AlertEvent{}

	for _, rule := range rules {
		if !rule.AppliesToPlatform(mention.Platform) {
			continue
		}
		if rule.InCooldown(now) {
			continue
		}

		matched, eventData := matchMention(rule, mention)
		if !matched {
			continue
		}

		mentionID := mention.ID
		event, err := uc.repo.CreateEvent(ctx, sc, repository.CreateEventOptions{
			Event: model.AlertEvent{
				TenantID:    sc.TenantID,
				AlertRuleID: rule.ID,
				MentionID:   &mentionID,
				EventType:   rule.RuleType,
				EventData:   eventData,
				Status:      model.AlertEventStatusPending,
				CreatedAt:   now,
			},
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.alertrule.usecase.CheckMention.CreateEvent: %v", err)
			return nil, err
		}

		if err := uc.repo.RecordTrigger(ctx, sc, repository.RecordTriggerOptions{
			RuleID: rule.ID,
			At:     now,
		}); err != nil {
			uc.l.Errorf(ctx, "internal.alertrule.usecase.CheckMention.RecordTrigger: %v", err)
			return nil, err
		}

		triggered = append(triggered, event)

		uc.dispatchAsync(ctx, action.DispatchInput{
			Rule:    rule,
			Mention: &mention,
			Event:   event,
		})
	}

	return triggered, nil
}

// dispatchAsync runs the action dispatch off the ingestion path. The dispatch
// context is detached so a finished request cannot cancel in-flight actions.
func (uc *usecase) dispatchAsync(ctx context.Context, ip action.DispatchInput) {
	go uc.dispatcher.Dispatch(context.WithoutCancel(ctx), ip)
}
