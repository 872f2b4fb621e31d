package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smap-engine/internal/action"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
	"smap-engine/pkg/log"
	"smap-engine/pkg/paginator"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

// mockRepository implements repository.Repository for testing.
type mockRepository struct {
	mu sync.Mutex

	rules            []model.AlertRule
	listActiveErr    error
	createEventErr   error
	recordTriggerErr error

	detailRule model.AlertRule
	detailErr  error

	createErr error
	updateErr error
	deleteErr error

	updateEventErr error

	events   []model.AlertEvent
	triggers []repository.RecordTriggerOptions
	updated  []model.AlertRule
}

var _ repository.Repository = &mockRepository{}

func (m *mockRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.AlertRule, paginator.Paginator, error) {
	return m.rules, paginator.Paginator{Total: int64(len(m.rules))}, nil
}

func (m *mockRepository) ListActive(ctx context.Context, sc model.Scope) ([]model.AlertRule, error) {
	if m.listActiveErr != nil {
		return nil, m.listActiveErr
	}
	return m.rules, nil
}

func (m *mockRepository) ListActiveByType(ctx context.Context, ruleType string) ([]model.AlertRule, error) {
	out := []model.AlertRule{}
	for _, r := range m.rules {
		if r.RuleType == ruleType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error) {
	if m.detailErr != nil {
		return model.AlertRule{}, m.detailErr
	}
	return m.detailRule, nil
}

func (m *mockRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.AlertRule, error) {
	if m.createErr != nil {
		return model.AlertRule{}, m.createErr
	}
	rule := opts.Rule
	if rule.ID == "" {
		rule.ID = "rule-created"
	}
	return rule, nil
}

func (m *mockRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.AlertRule, error) {
	if m.updateErr != nil {
		return model.AlertRule{}, m.updateErr
	}
	m.mu.Lock()
	m.updated = append(m.updated, opts.Rule)
	m.mu.Unlock()
	return opts.Rule, nil
}

func (m *mockRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.deleteErr
}

func (m *mockRepository) RecordTrigger(ctx context.Context, sc model.Scope, opts repository.RecordTriggerOptions) error {
	if m.recordTriggerErr != nil {
		return m.recordTriggerErr
	}
	m.mu.Lock()
	m.triggers = append(m.triggers, opts)
	m.mu.Unlock()
	return nil
}

func (m *mockRepository) CreateEvent(ctx context.Context, sc model.Scope, opts repository.CreateEventOptions) (model.AlertEvent, error) {
	if m.createEventErr != nil {
		return model.AlertEvent{}, m.createEventErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	event := opts.Event
	event.ID = fmt.Sprintf("event-%d", len(m.events)+1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockRepository) UpdateEventStatus(ctx context.Context, sc model.Scope, opts repository.UpdateEventStatusOptions) (model.AlertEvent, error) {
	if m.updateEventErr != nil {
		return model.AlertEvent{}, m.updateEventErr
	}
	actionedBy := opts.ActionedBy
	actionedAt := opts.ActionedAt
	return model.AlertEvent{
		ID:         opts.ID,
		TenantID:   sc.TenantID,
		Status:     opts.Status,
		ActionedBy: &actionedBy,
		ActionedAt: &actionedAt,
	}, nil
}

func (m *mockRepository) CountMentionsInRange(ctx context.Context, sc model.Scope, opts repository.CountMentionsOptions) (int64, error) {
	return 0, nil
}

// mockDispatcher records dispatch inputs on a channel so tests can wait for
// the asynchronous dispatch goroutine.
type mockDispatcher struct {
	calls chan action.DispatchInput
}

var _ action.UseCase = &mockDispatcher{}

func newMockDispatcher() *mockDispatcher {
	return &mockDispatcher{calls: make(chan action.DispatchInput, 16)}
}

func (m *mockDispatcher) Dispatch(ctx context.Context, ip action.DispatchInput) {
	m.calls <- ip
}

func (m *mockDispatcher) wait(timeout time.Duration) (action.DispatchInput, bool) {
	select {
	case ip := <-m.calls:
		return ip, true
	case <-time.After(timeout):
		return action.DispatchInput{}, false
	}
}

func newTestUsecase(repo *mockRepository, dispatcher *mockDispatcher, now time.Time) *usecase {
	return &usecase{
		l:          testLogger(),
		repo:       repo,
		dispatcher: dispatcher,
		clock:      func() time.Time { return now },
	}
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }
