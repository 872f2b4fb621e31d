package alertrule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/internal/model"
	pkgErrors "smap-engine/pkg/errors"
)

func TestValidateConditions(t *testing.T) {
	tests := []struct {
		name      string
		ruleType  string
		raw       string
		wantField string
	}{
		{
			name:      "unknown rule type",
			ruleType:  "mood_ring",
			raw:       `{}`,
			wantField: "rule_type",
		},
		{
			name:      "malformed document",
			ruleType:  model.RuleTypeSentimentThreshold,
			raw:       `{not json`,
			wantField: "conditions",
		},
		{
			name:      "threshold out of range",
			ruleType:  model.RuleTypeSentimentThreshold,
			raw:       `{"threshold":-1.5,"sentimentType":"negative"}`,
			wantField: "conditions.threshold",
		},
		{
			name:      "bad sentiment type",
			ruleType:  model.RuleTypeSentimentThreshold,
			raw:       `{"threshold":-0.5,"sentimentType":"positive"}`,
			wantField: "conditions.sentimentType",
		},
		{
			name:      "empty keyword list",
			ruleType:  model.RuleTypeKeywordMatch,
			raw:       `{"keywords":[],"matchType":"any"}`,
			wantField: "conditions.keywords",
		},
		{
			name:      "blank keyword",
			ruleType:  model.RuleTypeKeywordMatch,
			raw:       `{"keywords":["ok","  "],"matchType":"any"}`,
			wantField: "conditions.keywords",
		},
		{
			name:      "bad match type",
			ruleType:  model.RuleTypeKeywordMatch,
			raw:       `{"keywords":["ok"],"matchType":"some"}`,
			wantField: "conditions.matchType",
		},
		{
			name:      "non-positive follower floor",
			ruleType:  model.RuleTypeInfluencerMention,
			raw:       `{"minFollowers":0}`,
			wantField: "conditions.minFollowers",
		},
		{
			name:      "non-positive time window",
			ruleType:  model.RuleTypeVolumeSpike,
			raw:       `{"timeWindow":0,"increasePercentage":50,"minMentions":10}`,
			wantField: "conditions.timeWindow",
		},
		{
			name:      "negative increase percentage",
			ruleType:  model.RuleTypeVolumeSpike,
			raw:       `{"timeWindow":60,"increasePercentage":-1,"minMentions":10}`,
			wantField: "conditions.increasePercentage",
		},
		{
			name:      "negative minimum mentions",
			ruleType:  model.RuleTypeVolumeSpike,
			raw:       `{"timeWindow":60,"increasePercentage":50,"minMentions":-1}`,
			wantField: "conditions.minMentions",
		},
		{
			name:      "missing competitor id",
			ruleType:  model.RuleTypeCompetitorSpike,
			raw:       `{"competitorId":" "}`,
			wantField: "conditions.competitorId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateConditions(tt.ruleType, json.RawMessage(tt.raw))
			require.Error(t, err)

			var vErr *pkgErrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateConditions_Valid(t *testing.T) {
	tests := []struct {
		name     string
		ruleType string
		raw      string
	}{
		{name: "sentiment", ruleType: model.RuleTypeSentimentThreshold, raw: `{"threshold":-0.5,"sentimentType":"negative"}`},
		{name: "keywords", ruleType: model.RuleTypeKeywordMatch, raw: `{"keywords":["crash"],"matchType":"all"}`},
		{name: "influencer", ruleType: model.RuleTypeInfluencerMention, raw: `{"minFollowers":5000,"requireVerified":true}`},
		{name: "volume", ruleType: model.RuleTypeVolumeSpike, raw: `{"timeWindow":60,"increasePercentage":50,"minMentions":10}`},
		{name: "competitor", ruleType: model.RuleTypeCompetitorSpike, raw: `{"competitorId":"comp-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, err := ValidateConditions(tt.ruleType, json.RawMessage(tt.raw))
			require.NoError(t, err)

			// Exactly the variant for the rule type is populated.
			populated := 0
			for _, v := range []bool{
				conditions.SentimentThreshold != nil,
				conditions.KeywordMatch != nil,
				conditions.InfluencerMention != nil,
				conditions.VolumeSpike != nil,
				conditions.CompetitorSpike != nil,
			} {
				if v {
					populated++
				}
			}
			assert.Equal(t, 1, populated)
		})
	}
}

func TestValidateActions(t *testing.T) {
	t.Run("valid actions pass", func(t *testing.T) {
		err := ValidateActions([]model.RuleAction{
			{Type: model.ActionNotification},
			{Type: model.ActionEmail, Config: model.ActionConfig{Email: "ops@example.com"}},
			{Type: model.ActionWebhook, Config: model.ActionConfig{URL: "https://example.com/hook"}},
		})
		assert.NoError(t, err)
	})

	t.Run("unknown type names the entry", func(t *testing.T) {
		err := ValidateActions([]model.RuleAction{
			{Type: model.ActionNotification},
			{Type: model.ActionType("pager")},
		})
		require.Error(t, err)

		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "actions[1].type", vErr.Field)
	})

	t.Run("webhook requires a url", func(t *testing.T) {
		err := ValidateActions([]model.RuleAction{{Type: model.ActionWebhook}})
		require.Error(t, err)

		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "actions[0].config.url", vErr.Field)
	})
}
