package usecase

import (
	"context"

	"smap-engine/internal/action"
	"smap-engine/internal/action/repository"
	"smap-engine/internal/model"
)

func (uc *usecase) createCtlAlert(ctx context.Context, ip action.DispatchInput, _ model.ActionConfig) error {
	var (
		sentiment     string
		score         float64
		subjectID     = ip.Event.ID
		sourceChannel = "system"
	)
	if ip.Mention != nil {
		if ip.Mention.Sentiment != nil {
			sentiment = *ip.Mention.Sentiment
		}
		if ip.Mention.SentimentScore != nil {
			score = *ip.Mention.SentimentScore
		}
		subjectID = ip.Mention.ID
		sourceChannel = ip.Mention.Platform
	}

	sc := model.Scope{TenantID: ip.Rule.TenantID, UserID: ip.Rule.CreatedBy}
	if err := uc.repo.CreateCtlAlert(ctx, sc, repository.CreateCtlAlertOptions{
		Severity:      model.CtlAlertSeverity(ip.Rule.RuleType, sentiment, score),
		ScoreValue:    score,
		ScoreType:     "sentiment",
		Sentiment:     sentiment,
		SubjectID:     subjectID,
		SourceChannel: sourceChannel,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.action.usecase.createCtlAlert.CreateCtlAlert: %v", err)
		return err
	}

	return nil
}
