package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/internal/action"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
	"smap-engine/pkg/log"
	"smap-engine/pkg/paginator"
)

var sweepNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// mockRuleRepository implements the alert rule repository with canned mention
// counts per window.
type mockRuleRepository struct {
	mu sync.Mutex

	rules       []model.AlertRule
	listErr     error
	countByFrom map[time.Time]int64
	countErrFor string // tenant whose counts fail

	events   []model.AlertEvent
	triggers []repository.RecordTriggerOptions
}

var _ repository.Repository = &mockRuleRepository{}

func (m *mockRuleRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.AlertRule, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (m *mockRuleRepository) ListActive(ctx context.Context, sc model.Scope) ([]model.AlertRule, error) {
	return nil, nil
}

func (m *mockRuleRepository) ListActiveByType(ctx context.Context, ruleType string) ([]model.AlertRule, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rules, nil
}

func (m *mockRuleRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error) {
	return model.AlertRule{}, repository.ErrNotFound
}

func (m *mockRuleRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.AlertRule, error) {
	return opts.Rule, nil
}

func (m *mockRuleRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.AlertRule, error) {
	return opts.Rule, nil
}

func (m *mockRuleRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockRuleRepository) RecordTrigger(ctx context.Context, sc model.Scope, opts repository.RecordTriggerOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triggers = append(m.triggers, opts)
	return nil
}

func (m *mockRuleRepository) CreateEvent(ctx context.Context, sc model.Scope, opts repository.CreateEventOptions) (model.AlertEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event := opts.Event
	event.ID = fmt.Sprintf("event-%d", len(m.events)+1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockRuleRepository) UpdateEventStatus(ctx context.Context, sc model.Scope, opts repository.UpdateEventStatusOptions) (model.AlertEvent, error) {
	return model.AlertEvent{}, repository.ErrNotFound
}

func (m *mockRuleRepository) CountMentionsInRange(ctx context.Context, sc model.Scope, opts repository.CountMentionsOptions) (int64, error) {
	if m.countErrFor != "" && sc.TenantID == m.countErrFor {
		return 0, errors.New("count failed")
	}
	return m.countByFrom[opts.From], nil
}

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

func newTestSweepUsecase(repo *mockRuleRepository, dispatcher *mockDispatcher) *usecase {
	return &usecase{
		l:          log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"}),
		rules:      repo,
		dispatcher: dispatcher,
		clock:      func() time.Time { return sweepNow },
	}
}

func volumeRule(tenantID string, window, increase, minMentions float64) model.AlertRule {
	return model.AlertRule{
		ID:       "rule-" + tenantID,
		TenantID: tenantID,
		RuleType: model.RuleTypeVolumeSpike,
		Conditions: model.RuleConditions{
			VolumeSpike: &model.VolumeSpikeConditions{
				TimeWindow:         window,
				IncreasePercentage: increase,
				MinMentions:        minMentions,
			},
		},
		IsActive:  true,
		CreatedBy: "owner-" + tenantID,
	}
}

func TestEvaluateSpike(t *testing.T) {
	tests := []struct {
		name        string
		current     int64
		previous    int64
		conditions  model.VolumeSpikeConditions
		wantTrigger bool
		wantPercent float64
	}{
		{
			name:        "sixty percent increase clears fifty percent threshold",
			current:     16,
			previous:    10,
			conditions:  model.VolumeSpikeConditions{IncreasePercentage: 50, MinMentions: 10},
			wantTrigger: true,
			wantPercent: 60,
		},
		{
			name:        "forty percent increase misses fifty percent threshold",
			current:     14,
			previous:    10,
			conditions:  model.VolumeSpikeConditions{IncreasePercentage: 50, MinMentions: 10},
			wantTrigger: false,
			wantPercent: 40,
		},
		{
			name:        "exactly at threshold triggers",
			current:     15,
			previous:    10,
			conditions:  model.VolumeSpikeConditions{IncreasePercentage: 50, MinMentions: 10},
			wantTrigger: true,
			wantPercent: 50,
		},
		{
			name:        "below minimum volume never triggers",
			current:     9,
			previous:    1,
			conditions:  model.VolumeSpikeConditions{IncreasePercentage: 50, MinMentions: 10},
			wantTrigger: false,
			wantPercent: 0,
		},
		{
			name:        "empty previous window triggers once volume clears minimum",
			current:     12,
			previous:    0,
			conditions:  model.VolumeSpikeConditions{IncreasePercentage: 50, MinMentions: 10},
			wantTrigger: true,
			wantPercent: 0,
		},
		{
			name:        "drop in volume never triggers",
			current:     10,
			previous:    20,
			conditions:  model.VolumeSpikeConditions{IncreasePercentage: 50, MinMentions: 10},
			wantTrigger: false,
			wantPercent: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triggered, percent := evaluateSpike(tt.current, tt.previous, tt.conditions)
			assert.Equal(t, tt.wantTrigger, triggered)
			assert.Equal(t, tt.wantPercent, percent)
		})
	}
}

func TestCheckVolumeSpikes_TriggersAndRestrictsDispatch(t *testing.T) {
	window := 60 * time.Minute
	repo := &mockRuleRepository{
		rules: []model.AlertRule{volumeRule("tenant-1", 60, 50, 10)},
		countByFrom: map[time.Time]int64{
			sweepNow.Add(-window):     16, // current window
			sweepNow.Add(-2 * window): 10, // previous window
		},
	}
	dispatcher := newMockDispatcher()
	uc := newTestSweepUsecase(repo, dispatcher)

	err := uc.CheckVolumeSpikes(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, "tenant-1", event.TenantID)
	assert.Equal(t, model.RuleTypeVolumeSpike, event.EventType)
	assert.Equal(t, model.AlertEventStatusPending, event.Status)
	assert.Nil(t, event.MentionID)
	assert.Equal(t, int64(16), event.EventData["currentCount"])
	assert.Equal(t, int64(10), event.EventData["previousCount"])
	assert.Equal(t, float64(60), event.EventData["increasePercent"])

	require.Len(t, repo.triggers, 1)
	assert.Equal(t, "rule-tenant-1", repo.triggers[0].RuleID)

	select {
	case ip := <-dispatcher.calls:
		assert.Nil(t, ip.Mention)
		assert.ElementsMatch(t, []model.ActionType{model.ActionNotification, model.ActionEmail}, ip.Allow)
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch")
	}
}

func TestCheckVolumeSpikes_NoTriggerBelowThreshold(t *testing.T) {
	window := 60 * time.Minute
	repo := &mockRuleRepository{
		rules: []model.AlertRule{volumeRule("tenant-1", 60, 50, 10)},
		countByFrom: map[time.Time]int64{
			sweepNow.Add(-window):     14,
			sweepNow.Add(-2 * window): 10,
		},
	}
	uc := newTestSweepUsecase(repo, newMockDispatcher())

	err := uc.CheckVolumeSpikes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repo.events)
	assert.Empty(t, repo.triggers)
}

func TestCheckVolumeSpikes_CooldownSuppressesRule(t *testing.T) {
	window := 60 * time.Minute
	rule := volumeRule("tenant-1", 60, 50, 10)
	rule.CooldownMinutes = 120
	last := sweepNow.Add(-30 * time.Minute)
	rule.LastTriggeredAt = &last

	repo := &mockRuleRepository{
		rules: []model.AlertRule{rule},
		countByFrom: map[time.Time]int64{
			sweepNow.Add(-window):     100,
			sweepNow.Add(-2 * window): 10,
		},
	}
	uc := newTestSweepUsecase(repo, newMockDispatcher())

	err := uc.CheckVolumeSpikes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repo.events)
}

func TestCheckVolumeSpikes_RuleFailuresAreIsolated(t *testing.T) {
	window := 60 * time.Minute
	repo := &mockRuleRepository{
		rules: []model.AlertRule{
			volumeRule("tenant-broken", 60, 50, 10),
			volumeRule("tenant-ok", 60, 50, 10),
		},
		countErrFor: "tenant-broken",
		countByFrom: map[time.Time]int64{
			sweepNow.Add(-window):     16,
			sweepNow.Add(-2 * window): 10,
		},
	}
	uc := newTestSweepUsecase(repo, newMockDispatcher())

	err := uc.CheckVolumeSpikes(context.Background())
	require.NoError(t, err, "a broken rule must not fail the sweep")

	require.Len(t, repo.events, 1)
	assert.Equal(t, "tenant-ok", repo.events[0].TenantID)
}

func TestCheckVolumeSpikes_ListErrorPropagates(t *testing.T) {
	repo := &mockRuleRepository{listErr: errors.New("db down")}
	uc := newTestSweepUsecase(repo, newMockDispatcher())

	err := uc.CheckVolumeSpikes(context.Background())
	assert.Error(t, err)
}
