package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/internal/alertrule"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
	pkgErrors "smap-engine/pkg/errors"
)

var testScope = model.Scope{TenantID: "tenant-1", UserID: "user-1"}

func TestCreate(t *testing.T) {
	t.Run("valid rule is persisted with creator and tenant", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		o, err := uc.Create(context.Background(), testScope, alertrule.CreateInput{
			Name:            "negative sentiment",
			RuleType:        model.RuleTypeSentimentThreshold,
			Conditions:      json.RawMessage(`{"threshold":-0.5,"sentimentType":"negative"}`),
			Actions:         []model.RuleAction{{Type: model.ActionNotification}},
			IsActive:        true,
			CooldownMinutes: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, "rule-created", o.Rule.ID)
		assert.Equal(t, "tenant-1", o.Rule.TenantID)
		assert.Equal(t, "user-1", o.Rule.CreatedBy)
		require.NotNil(t, o.Rule.Conditions.SentimentThreshold)
		assert.Equal(t, -0.5, o.Rule.Conditions.SentimentThreshold.Threshold)
	})

	t.Run("unknown rule type is rejected", func(t *testing.T) {
		uc := newTestUsecase(&mockRepository{}, newMockDispatcher(), checkNow)

		_, err := uc.Create(context.Background(), testScope, alertrule.CreateInput{
			Name:       "bad",
			RuleType:   "anomaly_detector",
			Conditions: json.RawMessage(`{}`),
		})
		require.Error(t, err)

		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "rule_type", vErr.Field)
	})

	t.Run("webhook action without url is rejected", func(t *testing.T) {
		uc := newTestUsecase(&mockRepository{}, newMockDispatcher(), checkNow)

		_, err := uc.Create(context.Background(), testScope, alertrule.CreateInput{
			Name:       "hook",
			RuleType:   model.RuleTypeKeywordMatch,
			Conditions: json.RawMessage(`{"keywords":["down"],"matchType":"any"}`),
			Actions:    []model.RuleAction{{Type: model.ActionWebhook}},
		})
		require.Error(t, err)

		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "actions[0].config.url", vErr.Field)
	})
}

func TestUpdate(t *testing.T) {
	existing := model.AlertRule{
		ID:       "rule-1",
		TenantID: "tenant-1",
		RuleType: model.RuleTypeKeywordMatch,
		Conditions: model.RuleConditions{
			KeywordMatch: &model.KeywordMatchConditions{Keywords: []string{"old"}, MatchType: model.MatchTypeAny},
		},
		CreatedBy:    "user-0",
		TriggerCount: 7,
	}

	t.Run("conditions are validated against the stored rule type", func(t *testing.T) {
		repo := &mockRepository{detailRule: existing}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		// Sentiment-shaped conditions decode as a keyword document with no
		// keywords, so the update is rejected.
		_, err := uc.Update(context.Background(), testScope, alertrule.UpdateInput{
			ID:         "rule-1",
			Name:       "renamed",
			Conditions: json.RawMessage(`{"threshold":-0.5,"sentimentType":"negative"}`),
		})
		require.Error(t, err)

		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "conditions.keywords", vErr.Field)
	})

	t.Run("mutable fields change, bookkeeping survives", func(t *testing.T) {
		repo := &mockRepository{detailRule: existing}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		o, err := uc.Update(context.Background(), testScope, alertrule.UpdateInput{
			ID:              "rule-1",
			Name:            "renamed",
			Conditions:      json.RawMessage(`{"keywords":["new"],"matchType":"all"}`),
			IsActive:        true,
			CooldownMinutes: 15,
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", o.Rule.Name)
		assert.Equal(t, model.RuleTypeKeywordMatch, o.Rule.RuleType)
		assert.Equal(t, []string{"new"}, o.Rule.Conditions.KeywordMatch.Keywords)
		assert.Equal(t, 7, o.Rule.TriggerCount)
		assert.Equal(t, "user-0", o.Rule.CreatedBy)
	})

	t.Run("missing rule maps to domain error", func(t *testing.T) {
		repo := &mockRepository{detailErr: repository.ErrNotFound}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		_, err := uc.Update(context.Background(), testScope, alertrule.UpdateInput{ID: "nope"})
		assert.ErrorIs(t, err, alertrule.ErrRuleNotFound)
	})
}

func TestDetail_NotFound(t *testing.T) {
	repo := &mockRepository{detailErr: repository.ErrNotFound}
	uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

	_, err := uc.Detail(context.Background(), testScope, "missing")
	assert.ErrorIs(t, err, alertrule.ErrRuleNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockRepository{deleteErr: repository.ErrNotFound}
	uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

	err := uc.Delete(context.Background(), testScope, "missing")
	assert.ErrorIs(t, err, alertrule.ErrRuleNotFound)
}

func TestUpdateEventStatus(t *testing.T) {
	t.Run("only actioned and dismissed are accepted", func(t *testing.T) {
		uc := newTestUsecase(&mockRepository{}, newMockDispatcher(), checkNow)

		for _, status := range []string{"pending", "resolved", ""} {
			_, err := uc.UpdateEventStatus(context.Background(), testScope, alertrule.UpdateEventStatusInput{
				ID:     "event-1",
				Status: status,
			})
			assert.ErrorIs(t, err, alertrule.ErrInvalidStatus, "status %q", status)
		}
	})

	t.Run("valid transition stamps actor and time", func(t *testing.T) {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		uc := newTestUsecase(&mockRepository{}, newMockDispatcher(), now)

		o, err := uc.UpdateEventStatus(context.Background(), testScope, alertrule.UpdateEventStatusInput{
			ID:     "event-1",
			Status: model.AlertEventStatusActioned,
		})
		require.NoError(t, err)
		assert.Equal(t, model.AlertEventStatusActioned, o.Event.Status)
		require.NotNil(t, o.Event.ActionedBy)
		assert.Equal(t, "user-1", *o.Event.ActionedBy)
		require.NotNil(t, o.Event.ActionedAt)
		assert.Equal(t, now, *o.Event.ActionedAt)
	})

	t.Run("non-pending event maps to domain error", func(t *testing.T) {
		repo := &mockRepository{updateEventErr: repository.ErrNotPending}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		_, err := uc.UpdateEventStatus(context.Background(), testScope, alertrule.UpdateEventStatusInput{
			ID:     "event-1",
			Status: model.AlertEventStatusDismissed,
		})
		assert.ErrorIs(t, err, alertrule.ErrEventNotPending)
	})

	t.Run("missing event maps to domain error", func(t *testing.T) {
		repo := &mockRepository{updateEventErr: repository.ErrNotFound}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		_, err := uc.UpdateEventStatus(context.Background(), testScope, alertrule.UpdateEventStatusInput{
			ID:     "event-1",
			Status: model.AlertEventStatusActioned,
		})
		assert.ErrorIs(t, err, alertrule.ErrEventNotFound)
	})
}
