package usecase

import (
	"context"
	"time"

	"smap-engine/internal/action"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
)

// spikeDispatchKinds restricts spike-triggered dispatch to in-app
// notifications and email. Tickets, webhooks and ctl alerts are deliberately
// not reachable from this path.
var spikeDispatchKinds = []model.ActionType{model.ActionNotification, model.ActionEmail}

func (uc *usecase) CheckVolumeSpikes(ctx context.Context) error {
	rules, err := uc.rules.ListActiveByType(ctx, model.RuleTypeVolumeSpike)
	if err != nil {
		uc.l.Errorf(ctx, "internal.spike.usecase.CheckVolumeSpikes.ListActiveByType: %v", err)
		return err
	}

	for _, rule := range rules {
		if err := uc.checkRule(ctx, rule); err != nil {
			uc.l.Errorf(ctx, "internal.spike.usecase.CheckVolumeSpikes.checkRule: %v (rule %s)", err, rule.ID)
		}
	}

	return nil
}

func (uc *usecase) checkRule(ctx context.Context, rule model.AlertRule) error {
	c := rule.Conditions.VolumeSpike
	if c == nil {
		return nil
	}

	now := uc.clock()
	if rule.InCooldown(now) {
		return nil
	}

	sc := model.Scope{TenantID: rule.TenantID, UserID: rule.CreatedBy}
	window := time.Duration(c.TimeWindow) * time.Minute

	currentCount, err := uc.rules.CountMentionsInRange(ctx, sc, repository.CountMentionsOptions{
		From: now.Add(-window),
		To:   now,
	})
	if err != nil {
		return err
	}

	previousCount, err := uc.rules.CountMentionsInRange(ctx, sc, repository.CountMentionsOptions{
		From: now.Add(-2 * window),
		To:   now.Add(-window),
	})
	if err != nil {
		return err
	}

	triggered, increasePercent := evaluateSpike(currentCount, previousCount, *c)
	if !triggered {
		return nil
	}

	event, err := uc.rules.CreateEvent(ctx, sc, repository.CreateEventOptions{
		Event: model.AlertEvent{
			TenantID:    rule.TenantID,
			AlertRuleID: rule.ID,
			EventType:   model.RuleTypeVolumeSpike,
			EventData: map[string]any{
				"currentCount":    currentCount,
				"previousCount":   previousCount,
				"increasePercent": increasePercent,
				"timeWindow":      c.TimeWindow,
			},
			Status:    model.AlertEventStatusPending,
			CreatedAt: now,
		},
	})
	if err != nil {
		return err
	}

	if err := uc.rules.RecordTrigger(ctx, sc, repository.RecordTriggerOptions{
		RuleID: rule.ID,
		At:     now,
	}); err != nil {
		return err
	}

	go uc.dispatcher.Dispatch(context.WithoutCancel(ctx), action.DispatchInput{
		Rule:  rule,
		Event: event,
		Allow: spikeDispatchKinds,
	})

	return nil
}

// evaluateSpike applies the windowed comparison. A zero previous window
// cannot yield a percentage, so clearing the minimum volume alone triggers.
func evaluateSpike(currentCount, previousCount int64, c model.VolumeSpikeConditions) (bool, float64) {
	if float64(currentCount) < c.MinMentions {
		return false, 0
	}
	if previousCount == 0 {
		return true, 0
	}

	increasePercent := float64(currentCount-previousCount) / float64(previousCount) * 100
	return increasePercent >= c.IncreasePercentage, increasePercent
}
