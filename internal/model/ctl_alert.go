package model

import "time"

const (
	CtlAlertSeverityCritical = "critical"
	CtlAlertSeverityHigh     = "high"
	CtlAlertSeverityMedium   = "medium"
)

// CtlAlert represents a unified-severity alert row shared with the control
// tower service. The engine only inserts; the table is owned elsewhere.
type CtlAlert struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	Severity      string    `json:"severity"`
	ScoreValue    float64   `json:"score_value"`
	ScoreType     string    `json:"score_type"`
	Sentiment     string    `json:"sentiment"`
	SubjectID     string    `json:"subject_id"`
	SourceChannel string    `json:"source_channel"`
	CreatedAt     time.Time `json:"created_at"`
}

// CtlAlertSeverity derives the unified severity for a triggered rule from
// the mention's sentiment and the rule type.
func CtlAlertSeverity(ruleType string, sentiment string, score float64) string {
	if sentiment == SentimentTypeNegative && score < -0.7 {
		return CtlAlertSeverityCritical
	}
	if (sentiment == SentimentTypeNegative && score < -0.4) || ruleType == RuleTypeInfluencerMention {
		return CtlAlertSeverityHigh
	}
	return CtlAlertSeverityMedium
}
