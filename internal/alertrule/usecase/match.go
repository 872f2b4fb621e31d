package usecase

import (
	"math"
	"strings"

	"smap-engine/internal/model"
)

// matchMention evaluates one rule against one mention and, on a match,
// returns the event data snapshot explaining why. Volume and competitor
// rules are never matched here; the spike sweep owns them.
func matchMention(rule model.AlertRule, mention model.Mention) (bool, map[string]any) {
	switch rule.RuleType {
	case model.RuleTypeSentimentThreshold:
		return matchSentiment(rule.Conditions.SentimentThreshold, mention)
	case model.RuleTypeKeywordMatch:
		return matchKeywords(rule.Conditions.KeywordMatch, mention)
	case model.RuleTypeInfluencerMention:
		return matchInfluencer(rule.Conditions.InfluencerMention, mention)
	}
	return false, nil
}

func matchSentiment(c *model.SentimentThresholdConditions, mention model.Mention) (bool, map[string]any) {
	if c == nil || mention.SentimentScore == nil {
		return false, nil
	}

	score := *mention.SentimentScore
	var matched bool
	switch c.SentimentType {
	case model.SentimentTypeNegative:
		matched = score < c.Threshold
	case model.SentimentTypeAny:
		matched = math.Abs(score) > math.Abs(c.Threshold)
	}
	if !matched {
		return false, nil
	}

	return true, map[string]any{
		"sentiment_score": score,
		"threshold":       c.Threshold,
		"sentiment_type":  c.SentimentType,
	}
}

func matchKeywords(c *model.KeywordMatchConditions, mention model.Mention) (bool, map[string]any) {
	if c == nil || len(c.Keywords) == 0 {
		return false, nil
	}

	content := strings.ToLower(mention.Content)
	matchedKeywords := make([]string, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		if strings.Contains(content, strings.ToLower(kw)) {
			matchedKeywords = append(matchedKeywords, kw)
		}
	}

	var matched bool
	switch c.MatchType {
	case model.MatchTypeAll:
		matched = len(matchedKeywords) == len(c.Keywords)
	default:
		matched = len(matchedKeywords) > 0
	}
	if !matched {
		return false, nil
	}

	return true, map[string]any{
		"matched_keywords": matchedKeywords,
		"match_type":       c.MatchType,
	}
}

func matchInfluencer(c *model.InfluencerMentionConditions, mention model.Mention) (bool, map[string]any) {
	if c == nil {
		return false, nil
	}

	if float64(mention.AuthorFollowers) < c.MinFollowers {
		return false, nil
	}
	if c.RequireVerified && !mention.AuthorVerified {
		return false, nil
	}

	return true, map[string]any{
		"author_followers": mention.AuthorFollowers,
		"min_followers":    c.MinFollowers,
		"author_verified":  mention.AuthorVerified,
	}
}
