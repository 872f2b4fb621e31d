package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/internal/model"
)

var checkNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func sentimentRule(id string, threshold float64, sentimentType string) model.AlertRule {
	return model.AlertRule{
		ID:       id,
		TenantID: "tenant-1",
		Name:     "sentiment rule",
		RuleType: model.RuleTypeSentimentThreshold,
		Conditions: model.RuleConditions{
			SentimentThreshold: &model.SentimentThresholdConditions{
				Threshold:     threshold,
				SentimentType: sentimentType,
			},
		},
		IsActive: true,
	}
}

func testMention(score float64) model.Mention {
	return model.Mention{
		ID:             "mention-1",
		TenantID:       "tenant-1",
		Platform:       "twitter",
		Content:        "the product broke again",
		SentimentScore: floatPtr(score),
		PublishedAt:    checkNow,
	}
}

func TestCheckMention_SentimentThreshold(t *testing.T) {
	tests := []struct {
		name          string
		threshold     float64
		sentimentType string
		score         float64
		wantTrigger   bool
	}{
		{name: "negative below threshold triggers", threshold: -0.3, sentimentType: model.SentimentTypeNegative, score: -0.5, wantTrigger: true},
		{name: "negative above threshold does not trigger", threshold: -0.3, sentimentType: model.SentimentTypeNegative, score: -0.2, wantTrigger: false},
		{name: "negative exactly at threshold does not trigger", threshold: -0.3, sentimentType: model.SentimentTypeNegative, score: -0.3, wantTrigger: false},
		{name: "any triggers on strong positive", threshold: 0.5, sentimentType: model.SentimentTypeAny, score: 0.6, wantTrigger: true},
		{name: "any triggers on strong negative", threshold: 0.5, sentimentType: model.SentimentTypeAny, score: -0.6, wantTrigger: true},
		{name: "any does not trigger on weak score", threshold: 0.5, sentimentType: model.SentimentTypeAny, score: 0.4, wantTrigger: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{rules: []model.AlertRule{sentimentRule("rule-1", tt.threshold, tt.sentimentType)}}
			dispatcher := newMockDispatcher()
			uc := newTestUsecase(repo, dispatcher, checkNow)

			events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, testMention(tt.score))
			require.NoError(t, err)

			if !tt.wantTrigger {
				assert.Empty(t, events)
				assert.Empty(t, repo.triggers)
				return
			}

			require.Len(t, events, 1)
			assert.Equal(t, "rule-1", events[0].AlertRuleID)
			assert.Equal(t, model.RuleTypeSentimentThreshold, events[0].EventType)
			assert.Equal(t, model.AlertEventStatusPending, events[0].Status)
			require.NotNil(t, events[0].MentionID)
			assert.Equal(t, "mention-1", *events[0].MentionID)
			assert.Equal(t, tt.score, events[0].EventData["sentiment_score"])

			require.Len(t, repo.triggers, 1)
			assert.Equal(t, "rule-1", repo.triggers[0].RuleID)
			assert.Equal(t, checkNow, repo.triggers[0].At)

			ip, ok := dispatcher.wait(time.Second)
			require.True(t, ok, "expected a dispatch")
			assert.Equal(t, "rule-1", ip.Rule.ID)
			assert.Nil(t, ip.Allow)
			require.NotNil(t, ip.Mention)
			assert.Equal(t, "mention-1", ip.Mention.ID)
		})
	}
}

func TestCheckMention_SentimentWithoutScoreNeverMatches(t *testing.T) {
	repo := &mockRepository{rules: []model.AlertRule{sentimentRule("rule-1", -0.3, model.SentimentTypeNegative)}}
	uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

	mention := testMention(0)
	mention.SentimentScore = nil

	events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, mention)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCheckMention_KeywordMatch(t *testing.T) {
	keywordRule := func(matchType string, keywords ...string) model.AlertRule {
		return model.AlertRule{
			ID:       "rule-kw",
			TenantID: "tenant-1",
			RuleType: model.RuleTypeKeywordMatch,
			Conditions: model.RuleConditions{
				KeywordMatch: &model.KeywordMatchConditions{Keywords: keywords, MatchType: matchType},
			},
			IsActive: true,
		}
	}

	tests := []struct {
		name        string
		rule        model.AlertRule
		content     string
		wantTrigger bool
		wantMatched []string
	}{
		{
			name:        "any matches one keyword case-insensitively",
			rule:        keywordRule(model.MatchTypeAny, "Broken", "refund"),
			content:     "this thing is BROKEN",
			wantTrigger: true,
			wantMatched: []string{"Broken"},
		},
		{
			name:        "any without matches does not trigger",
			rule:        keywordRule(model.MatchTypeAny, "broken", "refund"),
			content:     "works great",
			wantTrigger: false,
		},
		{
			name:        "all requires every keyword",
			rule:        keywordRule(model.MatchTypeAll, "broken", "refund"),
			content:     "broken, want a refund",
			wantTrigger: true,
			wantMatched: []string{"broken", "refund"},
		},
		{
			name:        "all with a missing keyword does not trigger",
			rule:        keywordRule(model.MatchTypeAll, "broken", "refund"),
			content:     "broken",
			wantTrigger: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{rules: []model.AlertRule{tt.rule}}
			uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

			mention := testMention(-0.1)
			mention.Content = tt.content

			events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, mention)
			require.NoError(t, err)

			if !tt.wantTrigger {
				assert.Empty(t, events)
				return
			}
			require.Len(t, events, 1)
			assert.ElementsMatch(t, tt.wantMatched, events[0].EventData["matched_keywords"])
		})
	}
}

func TestCheckMention_InfluencerMention(t *testing.T) {
	influencerRule := func(minFollowers float64, requireVerified bool) model.AlertRule {
		return model.AlertRule{
			ID:       "rule-inf",
			TenantID: "tenant-1",
			RuleType: model.RuleTypeInfluencerMention,
			Conditions: model.RuleConditions{
				InfluencerMention: &model.InfluencerMentionConditions{
					MinFollowers:    minFollowers,
					RequireVerified: requireVerified,
				},
			},
			IsActive: true,
		}
	}

	tests := []struct {
		name        string
		rule        model.AlertRule
		followers   int
		verified    bool
		wantTrigger bool
	}{
		{name: "enough followers triggers", rule: influencerRule(10000, false), followers: 15000, verified: false, wantTrigger: true},
		{name: "exactly at minimum triggers", rule: influencerRule(10000, false), followers: 10000, verified: false, wantTrigger: true},
		{name: "too few followers does not trigger", rule: influencerRule(10000, false), followers: 9999, verified: true, wantTrigger: false},
		{name: "unverified author fails verified requirement", rule: influencerRule(10000, true), followers: 50000, verified: false, wantTrigger: false},
		{name: "verified author passes verified requirement", rule: influencerRule(10000, true), followers: 50000, verified: true, wantTrigger: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{rules: []model.AlertRule{tt.rule}}
			uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

			mention := testMention(0.1)
			mention.AuthorFollowers = tt.followers
			mention.AuthorVerified = tt.verified

			events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, mention)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrigger, len(events) == 1)
		})
	}
}

func TestCheckMention_PlatformFilter(t *testing.T) {
	rule := sentimentRule("rule-1", -0.3, model.SentimentTypeNegative)
	rule.Platforms = []string{"twitter", "reddit"}

	repo := &mockRepository{rules: []model.AlertRule{rule}}
	uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

	mention := testMention(-0.9)
	mention.Platform = "facebook"

	events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, mention)
	require.NoError(t, err)
	assert.Empty(t, events, "platform outside the whitelist must not trigger")

	mention.Platform = "reddit"
	events, err = uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, mention)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestCheckMention_Cooldown(t *testing.T) {
	tests := []struct {
		name          string
		lastTriggered time.Duration
		wantTrigger   bool
	}{
		{name: "inside cooldown is suppressed", lastTriggered: 30 * time.Minute, wantTrigger: false},
		{name: "expired cooldown triggers", lastTriggered: 61 * time.Minute, wantTrigger: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := sentimentRule("rule-1", -0.3, model.SentimentTypeNegative)
			rule.CooldownMinutes = 60
			last := checkNow.Add(-tt.lastTriggered)
			rule.LastTriggeredAt = &last

			repo := &mockRepository{rules: []model.AlertRule{rule}}
			uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

			events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, testMention(-0.9))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrigger, len(events) == 1)
		})
	}
}

func TestCheckMention_VolumeRulesAreNeverMatched(t *testing.T) {
	rule := model.AlertRule{
		ID:       "rule-vol",
		TenantID: "tenant-1",
		RuleType: model.RuleTypeVolumeSpike,
		Conditions: model.RuleConditions{
			VolumeSpike: &model.VolumeSpikeConditions{TimeWindow: 60, IncreasePercentage: 50, MinMentions: 1},
		},
		IsActive: true,
	}

	repo := &mockRepository{rules: []model.AlertRule{rule}}
	uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

	events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, testMention(-0.9))
	require.NoError(t, err)
	assert.Empty(t, events, "volume rules belong to the background sweep")
}

func TestCheckMention_MultipleRulesTriggerIndependently(t *testing.T) {
	rules := []model.AlertRule{
		sentimentRule("rule-1", -0.3, model.SentimentTypeNegative),
		{
			ID:       "rule-2",
			TenantID: "tenant-1",
			RuleType: model.RuleTypeKeywordMatch,
			Conditions: model.RuleConditions{
				KeywordMatch: &model.KeywordMatchConditions{Keywords: []string{"broke"}, MatchType: model.MatchTypeAny},
			},
			IsActive: true,
		},
	}

	repo := &mockRepository{rules: rules}
	dispatcher := newMockDispatcher()
	uc := newTestUsecase(repo, dispatcher, checkNow)

	events, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, testMention(-0.9))
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Len(t, repo.triggers, 2)
}

func TestCheckMention_RepositoryErrorsPropagate(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		repo := &mockRepository{listActiveErr: errors.New("db down")}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		_, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, testMention(-0.9))
		assert.Error(t, err)
	})

	t.Run("create event error", func(t *testing.T) {
		repo := &mockRepository{
			rules:          []model.AlertRule{sentimentRule("rule-1", -0.3, model.SentimentTypeNegative)},
			createEventErr: errors.New("insert failed"),
		}
		uc := newTestUsecase(repo, newMockDispatcher(), checkNow)

		_, err := uc.CheckMention(context.Background(), model.Scope{TenantID: "tenant-1"}, testMention(-0.9))
		assert.Error(t, err)
		assert.Empty(t, repo.triggers)
	})
}
