package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/internal/middleware"
	"smap-engine/internal/model"
	"smap-engine/internal/quota"
	"smap-engine/pkg/log"
	"smap-engine/pkg/scope"
)

type mockUseCase struct {
	recomputeFn func(ctx context.Context, sc model.Scope, quotaID string) (quota.QuotaOutput, error)
	listFn      func(ctx context.Context, sc model.Scope, formID string) ([]model.Quota, error)
	incrementFn func(ctx context.Context, sc model.Scope, submission model.Submission) error
}

var _ quota.UseCase = &mockUseCase{}

func (m *mockUseCase) Recompute(ctx context.Context, sc model.Scope, quotaID string) (quota.QuotaOutput, error) {
	return m.recomputeFn(ctx, sc, quotaID)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, formID string) ([]model.Quota, error) {
	return m.listFn(ctx, sc, formID)
}

func (m *mockUseCase) IncrementCounters(ctx context.Context, sc model.Scope, submission model.Submission) error {
	return m.incrementFn(ctx, sc, submission)
}

func newTestRouter(uc quota.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "fatal", Mode: "development", Encoding: "console"})

	r := gin.New()
	r.Use(middleware.Recovery(l))
	r.Use(func(c *gin.Context) {
		ctx := scope.SetPayloadToContext(c.Request.Context(), scope.Payload{
			TenantID: "tenant-1",
			UserID:   "user-1",
		})
		c.Request = c.Request.WithContext(ctx)
	})

	New(l, uc).RegisterRoutes(r.Group(""))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListQuotas_HTTP(t *testing.T) {
	uc := &mockUseCase{
		listFn: func(ctx context.Context, sc model.Scope, formID string) ([]model.Quota, error) {
			assert.Equal(t, "form-1", formID)
			return []model.Quota{
				{ID: "quota-1", FormID: formID, LimitCount: 100, CurrentCount: 100},
				{ID: "quota-2", FormID: formID, LimitCount: 100, CurrentCount: 40},
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodGet, "/forms/form-1/quotas", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items []struct {
				ID      string `json:"id"`
				Reached bool   `json:"reached"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 2)
	assert.True(t, resp.Data.Items[0].Reached)
	assert.False(t, resp.Data.Items[1].Reached)
}

func TestRecomputeQuota_HTTP_NotFound(t *testing.T) {
	uc := &mockUseCase{
		recomputeFn: func(ctx context.Context, sc model.Scope, quotaID string) (quota.QuotaOutput, error) {
			return quota.QuotaOutput{}, quota.ErrQuotaNotFound
		},
	}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/quotas/nope/recompute", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIngestSubmission_HTTP(t *testing.T) {
	t.Run("counters are bumped for the submission", func(t *testing.T) {
		var got model.Submission
		uc := &mockUseCase{
			incrementFn: func(ctx context.Context, sc model.Scope, submission model.Submission) error {
				got = submission
				return nil
			},
		}
		r := newTestRouter(uc)

		w := doJSON(r, http.MethodPost, "/submissions/ingest",
			`{"id":"sub-1","form_id":"form-1","data":{"channel":"web"}}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sub-1", got.ID)
		assert.Equal(t, "form-1", got.FormID)
		assert.Equal(t, "web", got.Data["channel"])
		assert.False(t, got.CreatedAt.IsZero(), "created_at defaults to now")
	})

	t.Run("missing form id is a field error", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(r, http.MethodPost, "/submissions/ingest", `{"id":"sub-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "form_id")
	})
}
