package model

import (
	"time"

	"smap-engine/internal/sqlboiler"

	"github.com/aarondl/null/v8"
)

// Mention represents an inbound social mention in the domain layer.
type Mention struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Platform        string    `json:"platform"`
	Content         string    `json:"content"`
	AuthorName      string    `json:"author_name"`
	AuthorHandle    string    `json:"author_handle"`
	AuthorFollowers int       `json:"author_followers"`
	AuthorVerified  bool      `json:"author_verified"`
	Sentiment       *string   `json:"sentiment,omitempty"`
	SentimentScore  *float64  `json:"sentiment_score,omitempty"`
	PublishedAt     time.Time `json:"published_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsNegative reports whether the mention carries a negative sentiment label.
func (m *Mention) IsNegative() bool {
	return m.Sentiment != nil && *m.Sentiment == SentimentTypeNegative
}

// NewMentionFromDB converts a SQLBoiler Mention model to a domain model.
// It safely handles null values from the database.
func NewMentionFromDB(dbMention *sqlboiler.Mention) *Mention {
	mention := &Mention{
		ID:              dbMention.ID,
		TenantID:        dbMention.TenantID,
		Platform:        dbMention.Platform,
		Content:         dbMention.Content,
		AuthorName:      dbMention.AuthorName,
		AuthorHandle:    dbMention.AuthorHandle,
		AuthorFollowers: dbMention.AuthorFollowers,
		AuthorVerified:  dbMention.AuthorVerified,
		PublishedAt:     dbMention.PublishedAt,
		CreatedAt:       dbMention.CreatedAt,
	}

	if dbMention.Sentiment.Valid {
		mention.Sentiment = &dbMention.Sentiment.String
	}
	if dbMention.SentimentScore.Valid {
		mention.SentimentScore = &dbMention.SentimentScore.Float64
	}

	return mention
}

// ToDBMention converts a domain Mention model to a SQLBoiler model for
// database operations.
func (m *Mention) ToDBMention() *sqlboiler.Mention {
	dbMention := &sqlboiler.Mention{
		ID:              m.ID,
		TenantID:        m.TenantID,
		Platform:        m.Platform,
		Content:         m.Content,
		AuthorName:      m.AuthorName,
		AuthorHandle:    m.AuthorHandle,
		AuthorFollowers: m.AuthorFollowers,
		AuthorVerified:  m.AuthorVerified,
		PublishedAt:     m.PublishedAt,
		CreatedAt:       m.CreatedAt,
	}

	if m.Sentiment != nil {
		dbMention.Sentiment = null.StringFrom(*m.Sentiment)
	}
	if m.SentimentScore != nil {
		dbMention.SentimentScore = null.Float64From(*m.SentimentScore)
	}

	return dbMention
}
