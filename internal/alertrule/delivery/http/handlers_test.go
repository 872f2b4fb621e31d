package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/internal/alertrule"
	"smap-engine/internal/middleware"
	"smap-engine/internal/model"
	"smap-engine/pkg/log"
	"smap-engine/pkg/scope"
)

type mockUseCase struct {
	createFn       func(ctx context.Context, sc model.Scope, ip alertrule.CreateInput) (alertrule.RuleOutput, error)
	detailFn       func(ctx context.Context, sc model.Scope, id string) (alertrule.RuleOutput, error)
	checkMentionFn func(ctx context.Context, sc model.Scope, mention model.Mention) ([]model.AlertEvent, error)
	updateEventFn  func(ctx context.Context, sc model.Scope, ip alertrule.UpdateEventStatusInput) (alertrule.EventOutput, error)
}

var _ alertrule.UseCase = &mockUseCase{}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, ip alertrule.CreateInput) (alertrule.RuleOutput, error) {
	return m.createFn(ctx, sc, ip)
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, ip alertrule.UpdateInput) (alertrule.RuleOutput, error) {
	return alertrule.RuleOutput{}, nil
}

func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, ip alertrule.GetInput) (alertrule.GetRuleOutput, error) {
	return alertrule.GetRuleOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (alertrule.RuleOutput, error) {
	return m.detailFn(ctx, sc, id)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockUseCase) CheckMention(ctx context.Context, sc model.Scope, mention model.Mention) ([]model.AlertEvent, error) {
	return m.checkMentionFn(ctx, sc, mention)
}

func (m *mockUseCase) UpdateEventStatus(ctx context.Context, sc model.Scope, ip alertrule.UpdateEventStatusInput) (alertrule.EventOutput, error) {
	return m.updateEventFn(ctx, sc, ip)
}

func newTestRouter(uc alertrule.UseCase, withScope bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "fatal", Mode: "development", Encoding: "console"})

	r := gin.New()
	r.Use(middleware.Recovery(l))
	if withScope {
		r.Use(func(c *gin.Context) {
			ctx := scope.SetPayloadToContext(c.Request.Context(), scope.Payload{
				TenantID: "tenant-1",
				UserID:   "user-1",
			})
			c.Request = c.Request.WithContext(ctx)
		})
	}

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

func TestCheckMention_HTTP(t *testing.T) {
	t.Run("triggered events are returned", func(t *testing.T) {
		uc := &mockUseCase{
			checkMentionFn: func(ctx context.Context, sc model.Scope, mention model.Mention) ([]model.AlertEvent, error) {
				assert.Equal(t, "tenant-1", sc.TenantID)
				assert.Equal(t, "tenant-1", mention.TenantID)
				assert.Equal(t, "mention-1", mention.ID)
				return []model.AlertEvent{{ID: "event-1", AlertRuleID: "rule-1", Status: model.AlertEventStatusPending}}, nil
			},
		}
		r := newTestRouter(uc, true)

		w := doJSON(r, http.MethodPost, "/mentions/check", `{"id":"mention-1","platform":"twitter","content":"hello"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				TriggeredCount int `json:"triggered_count"`
				Events         []struct {
					ID string `json:"id"`
				} `json:"events"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Data.TriggeredCount)
		require.Len(t, resp.Data.Events, 1)
		assert.Equal(t, "event-1", resp.Data.Events[0].ID)
	})

	t.Run("missing platform is a bad request", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, true)

		w := doJSON(r, http.MethodPost, "/mentions/check", `{"id":"mention-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "platform")
	})

	t.Run("no scope is unauthorized", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, false)

		w := doJSON(r, http.MethodPost, "/mentions/check", `{"id":"mention-1","platform":"twitter"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateRule_HTTP(t *testing.T) {
	t.Run("created rule comes back in the envelope", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, sc model.Scope, ip alertrule.CreateInput) (alertrule.RuleOutput, error) {
				assert.True(t, ip.IsActive, "is_active defaults to true")
				return alertrule.RuleOutput{Rule: model.AlertRule{
					ID:       "rule-1",
					Name:     ip.Name,
					RuleType: ip.RuleType,
				}}, nil
			},
		}
		r := newTestRouter(uc, true)

		w := doJSON(r, http.MethodPost, "/alert-rules",
			`{"name":"keywords","rule_type":"keyword_match","conditions":{"keywords":["down"],"matchType":"any"}}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"rule-1"`)
	})

	t.Run("missing name is a field error", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, true)

		w := doJSON(r, http.MethodPost, "/alert-rules", `{"rule_type":"keyword_match","conditions":{}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name")
	})
}

func TestDetailRule_HTTP_NotFound(t *testing.T) {
	uc := &mockUseCase{
		detailFn: func(ctx context.Context, sc model.Scope, id string) (alertrule.RuleOutput, error) {
			return alertrule.RuleOutput{}, alertrule.ErrRuleNotFound
		},
	}
	r := newTestRouter(uc, true)

	w := doJSON(r, http.MethodGet, "/alert-rules/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEventStatus_HTTP(t *testing.T) {
	t.Run("non-pending event conflicts", func(t *testing.T) {
		uc := &mockUseCase{
			updateEventFn: func(ctx context.Context, sc model.Scope, ip alertrule.UpdateEventStatusInput) (alertrule.EventOutput, error) {
				return alertrule.EventOutput{}, alertrule.ErrEventNotPending
			},
		}
		r := newTestRouter(uc, true)

		w := doJSON(r, http.MethodPatch, "/alert-events/event-1/status", `{"status":"actioned"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("event id comes from the path", func(t *testing.T) {
		uc := &mockUseCase{
			updateEventFn: func(ctx context.Context, sc model.Scope, ip alertrule.UpdateEventStatusInput) (alertrule.EventOutput, error) {
				assert.Equal(t, "event-7", ip.ID)
				assert.Equal(t, "dismissed", ip.Status)
				return alertrule.EventOutput{Event: model.AlertEvent{ID: ip.ID, Status: ip.Status}}, nil
			},
		}
		r := newTestRouter(uc, true)

		w := doJSON(r, http.MethodPatch, "/alert-events/event-7/status", `{"status":"dismissed"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMapError_UnknownErrorHitsRecovery(t *testing.T) {
	uc := &mockUseCase{
		detailFn: func(ctx context.Context, sc model.Scope, id string) (alertrule.RuleOutput, error) {
			return alertrule.RuleOutput{}, errors.New("connection reset")
		},
	}
	r := newTestRouter(uc, true)

	w := doJSON(r, http.MethodGet, "/alert-rules/rule-1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
