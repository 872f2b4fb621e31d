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
	AlertEventStatusPending   = "pending"
	AlertEventStatusActioned  = "actioned"
	AlertEventStatusDismissed = "dismissed"
)

// AlertEvent represents a triggered rule occurrence in the domain layer.
// Events are created exclusively by rule triggers; their status only moves
// via an explicit manual update.
type AlertEvent struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenant_id"`
	AlertRuleID string         `json:"alert_rule_id"`
	MentionID   *string        `json:"mention_id,omitempty"`
	EventType   string         `json:"event_type"`
	EventData   map[string]any `json:"event_data"`
	Status      string         `json:"status"`
	ActionedBy  *string        `json:"actioned_by,omitempty"`
	ActionedAt  *time.Time     `json:"actioned_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewAlertEventFromDB converts a SQLBoiler AlertEvent model to a domain model.
// It safely handles null values from the database.
func NewAlertEventFromDB(dbEvent *sqlboiler.AlertEvent) (*AlertEvent, error) {
	event := &AlertEvent{
		ID:          dbEvent.ID,
		TenantID:    dbEvent.TenantID,
		AlertRuleID: dbEvent.AlertRuleID,
		EventType:   dbEvent.EventType,
		Status:      dbEvent.Status,
		CreatedAt:   dbEvent.CreatedAt,
	}

	if len(dbEvent.EventData) > 0 {
		if err := json.Unmarshal(dbEvent.EventData, &event.EventData); err != nil {
			return nil, errors.Wrap(err, "decode event data")
		}
	}

	if dbEvent.MentionID.Valid {
		event.MentionID = &dbEvent.MentionID.String
	}
	if dbEvent.ActionedBy.Valid {
		event.ActionedBy = &dbEvent.ActionedBy.String
	}
	if dbEvent.ActionedAt.Valid {
		event.ActionedAt = &dbEvent.ActionedAt.Time
	}

	return event, nil
}

// ToDBAlertEvent converts a domain AlertEvent to a SQLBoiler model for
// database operations.
func (e *AlertEvent) ToDBAlertEvent() (*sqlboiler.AlertEvent, error) {
	data, err := json.Marshal(e.EventData)
	if err != nil {
		return nil, errors.Wrap(err, "encode event data")
	}

	dbEvent := &sqlboiler.AlertEvent{
		ID:          e.ID,
		TenantID:    e.TenantID,
		AlertRuleID: e.AlertRuleID,
		EventType:   e.EventType,
		EventData:   types.JSON(data),
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}

	if e.MentionID != nil {
		dbEvent.MentionID = null.StringFrom(*e.MentionID)
	}
	if e.ActionedBy != nil {
		dbEvent.ActionedBy = null.StringFrom(*e.ActionedBy)
	}
	if e.ActionedAt != nil {
		dbEvent.ActionedAt = null.TimeFrom(*e.ActionedAt)
	}

	return dbEvent, nil
}
