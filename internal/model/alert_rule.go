package model

import (
	"encoding/json"
	"time"

	"smap-engine/internal/sqlboiler"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/friendsofgo/errors"
)

const (
	RuleTypeSentimentThreshold = "sentiment_threshold"
	RuleTypeVolumeSpike        = "volume_spike"
	RuleTypeKeywordMatch       = "keyword_match"
	RuleTypeInfluencerMention  = "influencer_mention"
	RuleTypeCompetitorSpike    = "competitor_spike"
)

// RuleTypes lists every recognized rule type.
var RuleTypes = []string{
	RuleTypeSentimentThreshold,
	RuleTypeVolumeSpike,
	RuleTypeKeywordMatch,
	RuleTypeInfluencerMention,
	RuleTypeCompetitorSpike,
}

const (
	SentimentTypeNegative = "negative"
	SentimentTypeAny      = "any"

	MatchTypeAny = "any"
	MatchTypeAll = "all"
)

// ActionType is the closed set of action kinds a rule may configure.
type ActionType string

const (
	ActionNotification ActionType = "notification"
	ActionEmail        ActionType = "email"
	ActionCtlAlert     ActionType = "ctl_alert"
	ActionTicket       ActionType = "ticket"
	ActionWebhook      ActionType = "webhook"
)

// IsValid reports whether the action type is a recognized kind.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionNotification, ActionEmail, ActionCtlAlert, ActionTicket, ActionWebhook:
		return true
	}
	return false
}

// ActionConfig carries the per-kind settings of a configured action.
// Only the fields relevant to the action's type are populated.
type ActionConfig struct {
	UserID     string            `json:"userId,omitempty"`
	Email      string            `json:"email,omitempty"`
	Recipients []string          `json:"recipients,omitempty"`
	URL        string            `json:"url,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Priority   string            `json:"priority,omitempty"`
}

// RuleAction is one entry of a rule's ordered action list.
type RuleAction struct {
	Type   ActionType   `json:"type"`
	Config ActionConfig `json:"config"`
}

// SentimentThresholdConditions matches mentions whose sentiment score
// crosses the configured threshold.
type SentimentThresholdConditions struct {
	Threshold     float64 `json:"threshold"`
	SentimentType string  `json:"sentimentType"`
}

// KeywordMatchConditions matches mentions containing the configured keywords.
type KeywordMatchConditions struct {
	Keywords  []string `json:"keywords"`
	MatchType string   `json:"matchType"`
}

// InfluencerMentionConditions matches mentions by high-reach authors.
type InfluencerMentionConditions struct {
	MinFollowers    float64 `json:"minFollowers"`
	RequireVerified bool    `json:"requireVerified,omitempty"`
}

// VolumeSpikeConditions configures the windowed volume comparison. It is
// evaluated by the spike sweep only, never against individual mentions.
type VolumeSpikeConditions struct {
	TimeWindow         float64 `json:"timeWindow"`
	IncreasePercentage float64 `json:"increasePercentage"`
	MinMentions        float64 `json:"minMentions"`
}

// CompetitorSpikeConditions references a tracked competitor.
type CompetitorSpikeConditions struct {
	CompetitorID string `json:"competitorId"`
}

// RuleConditions is a tagged union of the per-rule-type condition shapes.
// Exactly one variant is non-nil, matching the owning rule's rule_type.
type RuleConditions struct {
	SentimentThreshold *SentimentThresholdConditions
	KeywordMatch       *KeywordMatchConditions
	InfluencerMention  *InfluencerMentionConditions
	VolumeSpike        *VolumeSpikeConditions
	CompetitorSpike    *CompetitorSpikeConditions
}

// DecodeRuleConditions deserializes a stored conditions document into the
// typed variant for the given rule type. It is the single parse step between
// the storage column and the evaluation logic.
func DecodeRuleConditions(ruleType string, raw []byte) (RuleConditions, error) {
	var rc RuleConditions

	switch ruleType {
	case RuleTypeSentimentThreshold:
		var c SentimentThresholdConditions
		if err := json.Unmarshal(raw, &c); err != nil {
			return rc, errors.Wrap(err, "decode sentiment_threshold conditions")
		}
		rc.SentimentThreshold = &c
	case RuleTypeKeywordMatch:
		var c KeywordMatchConditions
		if err := json.Unmarshal(raw, &c); err != nil {
			return rc, errors.Wrap(err, "decode keyword_match conditions")
		}
		rc.KeywordMatch = &c
	case RuleTypeInfluencerMention:
		var c InfluencerMentionConditions
		if err := json.Unmarshal(raw, &c); err != nil {
			return rc, errors.Wrap(err, "decode influencer_mention conditions")
		}
		rc.InfluencerMention = &c
	case RuleTypeVolumeSpike:
		var c VolumeSpikeConditions
		if err := json.Unmarshal(raw, &c); err != nil {
			return rc, errors.Wrap(err, "decode volume_spike conditions")
		}
		rc.VolumeSpike = &c
	case RuleTypeCompetitorSpike:
		var c CompetitorSpikeConditions
		if err := json.Unmarshal(raw, &c); err != nil {
			return rc, errors.Wrap(err, "decode competitor_spike conditions")
		}
		rc.CompetitorSpike = &c
	default:
		return rc, errors.Errorf("unknown rule type %q", ruleType)
	}

	return rc, nil
}

// Raw re-serializes the populated variant for storage.
func (rc RuleConditions) Raw() ([]byte, error) {
	switch {
	case rc.SentimentThreshold != nil:
		return json.Marshal(rc.SentimentThreshold)
	case rc.KeywordMatch != nil:
		return json.Marshal(rc.KeywordMatch)
	case rc.InfluencerMention != nil:
		return json.Marshal(rc.InfluencerMention)
	case rc.VolumeSpike != nil:
		return json.Marshal(rc.VolumeSpike)
	case rc.CompetitorSpike != nil:
		return json.Marshal(rc.CompetitorSpike)
	}
	return []byte("{}"), nil
}

// AlertRule represents an alert rule entity in the domain layer.
// This is a safe type model that doesn't depend on database-specific types.
type AlertRule struct {
	ID              string         `json:"id"`
	TenantID        string         `json:"tenant_id"`
	Name            string         `json:"name"`
	RuleType        string         `json:"rule_type"`
	Conditions      RuleConditions `json:"conditions"`
	Actions         []RuleAction   `json:"actions"`
	Platforms       []string       `json:"platforms,omitempty"`
	IsActive        bool           `json:"is_active"`
	CooldownMinutes int            `json:"cooldown_minutes"`
	LastTriggeredAt *time.Time     `json:"last_triggered_at,omitempty"`
	TriggerCount    int            `json:"trigger_count"`
	CreatedBy       string         `json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// InCooldown reports whether the rule is still inside its cooldown window
// as of the given instant.
func (r *AlertRule) InCooldown(now time.Time) bool {
	if r.CooldownMinutes <= 0 || r.LastTriggeredAt == nil {
		return false
	}
	return now.Sub(*r.LastTriggeredAt) < time.Duration(r.CooldownMinutes)*time.Minute
}

// AppliesToPlatform reports whether the rule's platform whitelist admits the
// given platform. An empty whitelist admits everything.
func (r *AlertRule) AppliesToPlatform(platform string) bool {
	if len(r.Platforms) == 0 {
		return true
	}
	for _, p := range r.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// NewAlertRuleFromDB converts a SQLBoiler AlertRule model to a domain model.
// The conditions and actions documents are decoded here, once, so downstream
// logic works against typed fields.
func NewAlertRuleFromDB(dbRule *sqlboiler.AlertRule) (*AlertRule, error) {
	conditions, err := DecodeRuleConditions(dbRule.RuleType, dbRule.Conditions)
	if err != nil {
		return nil, err
	}

	var actions []RuleAction
	if len(dbRule.Actions) > 0 {
		if err := json.Unmarshal(dbRule.Actions, &actions); err != nil {
			return nil, errors.Wrap(err, "decode rule actions")
		}
	}

	rule := &AlertRule{
		ID:              dbRule.ID,
		TenantID:        dbRule.TenantID,
		Name:            dbRule.Name,
		RuleType:        dbRule.RuleType,
		Conditions:      conditions,
		Actions:         actions,
		Platforms:       dbRule.Platforms,
		IsActive:        dbRule.IsActive,
		CooldownMinutes: dbRule.CooldownMinutes,
		TriggerCount:    dbRule.TriggerCount,
		CreatedBy:       dbRule.CreatedBy,
		CreatedAt:       dbRule.CreatedAt,
		UpdatedAt:       dbRule.UpdatedAt,
	}

	if dbRule.LastTriggeredAt.Valid {
		rule.LastTriggeredAt = &dbRule.LastTriggeredAt.Time
	}

	return rule, nil
}

// ToDBAlertRule converts a domain AlertRule to a SQLBoiler model for
// database operations.
func (r *AlertRule) ToDBAlertRule() (*sqlboiler.AlertRule, error) {
	conditions, err := r.Conditions.Raw()
	if err != nil {
		return nil, errors.Wrap(err, "encode rule conditions")
	}

	actions, err := json.Marshal(r.Actions)
	if err != nil {
		return nil, errors.Wrap(err, "encode rule actions")
	}

	dbRule := &sqlboiler.AlertRule{
		ID:              r.ID,
		TenantID:        r.TenantID,
		Name:            r.Name,
		RuleType:        r.RuleType,
		Conditions:      types.JSON(conditions),
		Actions:         types.JSON(actions),
		Platforms:       types.StringArray(r.Platforms),
		IsActive:        r.IsActive,
		CooldownMinutes: r.CooldownMinutes,
		TriggerCount:    r.TriggerCount,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.LastTriggeredAt != nil {
		dbRule.LastTriggeredAt = null.TimeFrom(*r.LastTriggeredAt)
	}

	return dbRule, nil
}
