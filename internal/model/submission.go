package model

import (
	"encoding/json"
	"time"

	"smap-engine/internal/sqlboiler"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/friendsofgo/errors"
)

const SubmissionStatusCompleted = "completed"

// Submission represents an inbound form submission in the domain layer.
type Submission struct {
	ID        string         `json:"id"`
	FormID    string         `json:"form_id"`
	Data      map[string]any `json:"data"`
	Status    *string        `json:"status,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Countable reports whether the submission participates in quota counting.
// Only completed submissions count; an unset status means completed.
func (s *Submission) Countable() bool {
	return s.Status == nil || *s.Status == "" || *s.Status == SubmissionStatusCompleted
}

// NewSubmissionFromDB converts a SQLBoiler FormSubmission model to a domain
// model. It safely handles null values from the database.
func NewSubmissionFromDB(dbSub *sqlboiler.FormSubmission) (*Submission, error) {
	sub := &Submission{
		ID:        dbSub.ID,
		FormID:    dbSub.FormID,
		CreatedAt: dbSub.CreatedAt,
	}

	if len(dbSub.Data) > 0 {
		if err := json.Unmarshal(dbSub.Data, &sub.Data); err != nil {
			return nil, errors.Wrap(err, "decode submission data")
		}
	}

	if dbSub.Status.Valid {
		sub.Status = &dbSub.Status.String
	}

	return sub, nil
}

// ToDBSubmission converts a domain Submission model to a SQLBoiler model
// for database operations.
func (s *Submission) ToDBSubmission() (*sqlboiler.FormSubmission, error) {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, errors.Wrap(err, "encode submission data")
	}

	dbSub := &sqlboiler.FormSubmission{
		ID:        s.ID,
		FormID:    s.FormID,
		Data:      types.JSON(data),
		CreatedAt: s.CreatedAt,
	}

	if s.Status != nil {
		dbSub.Status = null.StringFrom(*s.Status)
	}

	return dbSub, nil
}
