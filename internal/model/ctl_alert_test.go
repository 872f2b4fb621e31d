package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtlAlertSeverity(t *testing.T) {
	tests := []struct {
		name      string
		ruleType  string
		sentiment string
		score     float64
		want      string
	}{
		{
			name:      "strongly negative sentiment is critical",
			ruleType:  RuleTypeSentimentThreshold,
			sentiment: SentimentTypeNegative,
			score:     -0.85,
			want:      CtlAlertSeverityCritical,
		},
		{
			name:      "moderately negative sentiment is high",
			ruleType:  RuleTypeSentimentThreshold,
			sentiment: SentimentTypeNegative,
			score:     -0.5,
			want:      CtlAlertSeverityHigh,
		},
		{
			name:      "influencer mention is high regardless of sentiment",
			ruleType:  RuleTypeInfluencerMention,
			sentiment: "",
			score:     0,
			want:      CtlAlertSeverityHigh,
		},
		{
			name:      "mildly negative sentiment is medium",
			ruleType:  RuleTypeSentimentThreshold,
			sentiment: SentimentTypeNegative,
			score:     -0.2,
			want:      CtlAlertSeverityMedium,
		},
		{
			name:      "positive score is medium even below thresholds",
			ruleType:  RuleTypeKeywordMatch,
			sentiment: "positive",
			score:     -0.9,
			want:      CtlAlertSeverityMedium,
		},
		{
			name:      "boundary score is not critical",
			ruleType:  RuleTypeSentimentThreshold,
			sentiment: SentimentTypeNegative,
			score:     -0.7,
			want:      CtlAlertSeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CtlAlertSeverity(tt.ruleType, tt.sentiment, tt.score))
		})
	}
}
