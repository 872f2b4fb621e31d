package alertrule

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"smap-engine/internal/model"
	pkgErrors "smap-engine/pkg/errors"
)

// ValidateConditions decodes and validates a conditions document for the
// given rule type. Violations name the offending field. On success the typed
// variant is returned so callers decode only once.
func ValidateConditions(ruleType string, raw json.RawMessage) (model.RuleConditions, error) {
	if !isKnownRuleType(ruleType) {
		return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "rule_type", "must be one of: "+strings.Join(model.RuleTypes, ", "))
	}

	conditions, err := model.DecodeRuleConditions(ruleType, raw)
	if err != nil {
		return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions", "malformed conditions document")
	}

	switch {
	case conditions.SentimentThreshold != nil:
		c := conditions.SentimentThreshold
		if c.Threshold < -1 || c.Threshold > 1 {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.threshold", "must be between -1 and 1")
		}
		if c.SentimentType != model.SentimentTypeNegative && c.SentimentType != model.SentimentTypeAny {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.sentimentType", "must be negative or any")
		}

	case conditions.KeywordMatch != nil:
		c := conditions.KeywordMatch
		if len(c.Keywords) == 0 {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.keywords", "must be a non-empty list")
		}
		for _, kw := range c.Keywords {
			if strings.TrimSpace(kw) == "" {
				return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.keywords", "must not contain empty keywords")
			}
		}
		if c.MatchType != model.MatchTypeAny && c.MatchType != model.MatchTypeAll {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.matchType", "must be any or all")
		}

	case conditions.InfluencerMention != nil:
		if conditions.InfluencerMention.MinFollowers <= 0 {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.minFollowers", "must be a positive number")
		}

	case conditions.VolumeSpike != nil:
		c := conditions.VolumeSpike
		if c.TimeWindow <= 0 {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.timeWindow", "must be a positive number of minutes")
		}
		if c.IncreasePercentage < 0 {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.increasePercentage", "must not be negative")
		}
		if c.MinMentions < 0 {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.minMentions", "must not be negative")
		}

	case conditions.CompetitorSpike != nil:
		if strings.TrimSpace(conditions.CompetitorSpike.CompetitorID) == "" {
			return model.RuleConditions{}, pkgErrors.NewValidationError(http.StatusBadRequest, "conditions.competitorId", "is required")
		}
	}

	return conditions, nil
}

// ValidateActions validates a rule's action list.
func ValidateActions(actions []model.RuleAction) error {
	for i, act := range actions {
		if !act.Type.IsValid() {
			return pkgErrors.NewValidationError(http.StatusBadRequest, actionField(i, "type"), "unknown action type")
		}
		if act.Type == model.ActionWebhook && strings.TrimSpace(act.Config.URL) == "" {
			return pkgErrors.NewValidationError(http.StatusBadRequest, actionField(i, "config.url"), "is required for webhook actions")
		}
	}
	return nil
}

func actionField(i int, field string) string {
	return "actions[" + strconv.Itoa(i) + "]." + field
}

func isKnownRuleType(ruleType string) bool {
	for _, t := range model.RuleTypes {
		if t == ruleType {
			return true
		}
	}
	return false
}
