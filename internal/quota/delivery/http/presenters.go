package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"smap-engine/internal/model"
	pkgErrors "smap-engine/pkg/errors"
)

// --- Request DTOs ---

type ingestSubmissionReq struct {
	ID        string         `json:"id"`
	FormID    string         `json:"form_id"`
	Data      map[string]any `json:"data"`
	Status    *string        `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (r ingestSubmissionReq) validate() error {
	if strings.TrimSpace(r.FormID) == "" {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "form_id", "is required")
	}
	return nil
}

func (r ingestSubmissionReq) toSubmission() model.Submission {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return model.Submission{
		ID:        r.ID,
		FormID:    r.FormID,
		Data:      r.Data,
		Status:    r.Status,
		CreatedAt: createdAt,
	}
}

// --- Response DTOs ---

type quotaResp struct {
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
	Reached      bool            `json:"reached"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func newQuotaResp(q model.Quota) quotaResp {
	return quotaResp{
		ID:           q.ID,
		FormID:       q.FormID,
		Label:        q.Label,
		LimitCount:   q.LimitCount,
		CurrentCount: q.CurrentCount,
		Criteria:     q.Criteria,
		Action:       q.Action,
		ActionData:   q.ActionData,
		ResetPeriod:  q.ResetPeriod,
		IsActive:     q.IsActive,
		StartDate:    q.StartDate,
		EndDate:      q.EndDate,
		Reached:      q.LimitCount > 0 && q.CurrentCount >= q.LimitCount,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

type listQuotasResp struct {
	Items []quotaResp `json:"items"`
}

func newListQuotasResp(quotas []model.Quota) listQuotasResp {
	items := make([]quotaResp, 0, len(quotas))
	for _, q := range quotas {
		items = append(items, newQuotaResp(q))
	}

	return listQuotasResp{Items: items}
}
