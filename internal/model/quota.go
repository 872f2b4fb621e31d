package model

import (
	"encoding/json"
	"time"

	"smap-engine/internal/sqlboiler"

	"github.com/aarondl/null/v8"
)

// Quota represents a submission quota entity in the domain layer.
// Criteria and action data remain raw JSON documents; the criteria matcher
// owns their interpretation.
type Quota struct {
	ID           string          `json:"id"`
	FormID       string          `json:"form_id"`
	Label        string          `json:"label"`
	LimitCount   int             `json:"limit_count"`
	CurrentCount int             `json:"current_count"`
	Criteria     json.RawMessage `json:"criteria,omitempty"`
	Action       string          `json:"action"`
	ActionData   json.RawMessage `json:"action_data,omitempty"`
	ResetPeriod  string          `json:"reset_period"`
	IsActive     bool            `json:"is_active"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InValidityWindow reports whether the quota's optional start/end dates admit
// the given instant.
func (q *Quota) InValidityWindow(now time.Time) bool {
	if q.StartDate != nil && now.Before(*q.StartDate) {
		return false
	}
	if q.EndDate != nil && now.After(*q.EndDate) {
		return false
	}
	return true
}

// NewQuotaFromDB converts a SQLBoiler Quota model to a domain Quota model.
// It safely handles null values from the database.
func NewQuotaFromDB(dbQuota *sqlboiler.Quota) *Quota {
	quota := &Quota{
		ID:           dbQuota.ID,
		FormID:       dbQuota.FormID,
		Label:        dbQuota.Label,
		LimitCount:   dbQuota.LimitCount,
		CurrentCount: dbQuota.CurrentCount,
		Action:       dbQuota.Action,
		ResetPeriod:  dbQuota.ResetPeriod,
		IsActive:     dbQuota.IsActive,
		CreatedAt:    dbQuota.CreatedAt,
		UpdatedAt:    dbQuota.UpdatedAt,
	}

	if dbQuota.Criteria.Valid {
		quota.Criteria = json.RawMessage(dbQuota.Criteria.JSON)
	}
	if dbQuota.ActionData.Valid {
		quota.ActionData = json.RawMessage(dbQuota.ActionData.JSON)
	}
	if dbQuota.StartDate.Valid {
		quota.StartDate = &dbQuota.StartDate.Time
	}
	if dbQuota.EndDate.Valid {
		quota.EndDate = &dbQuota.EndDate.Time
	}

	return quota
}

// ToDBQuota converts a domain Quota model to a SQLBoiler model for database
// operations.
func (q *Quota) ToDBQuota() *sqlboiler.Quota {
	dbQuota := &sqlboiler.Quota{
		ID:           q.ID,
		FormID:       q.FormID,
		Label:        q.Label,
		LimitCount:   q.LimitCount,
		CurrentCount: q.CurrentCount,
		Action:       q.Action,
		ResetPeriod:  q.ResetPeriod,
		IsActive:     q.IsActive,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}

	if len(q.Criteria) > 0 {
		dbQuota.Criteria = null.JSONFrom([]byte(q.Criteria))
	}
	if len(q.ActionData) > 0 {
		dbQuota.ActionData = null.JSONFrom([]byte(q.ActionData))
	}
	if q.StartDate != nil {
		dbQuota.StartDate = null.TimeFrom(*q.StartDate)
	}
	if q.EndDate != nil {
		dbQuota.EndDate = null.TimeFrom(*q.EndDate)
	}

	return dbQuota
}
