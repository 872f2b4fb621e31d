package criteria

import (
	"context"
	"testing"

	"smap-engine/pkg/log"
)

func testMatcher() *Matcher {
	return New(log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"}))
}

func TestMatcher_Matches_EmptyCriteriaAlwaysMatch(t *testing.T) {
	m := testMatcher()
	data := map[string]any{"score": 9.0, "channel": "web"}

	tests := []struct {
		name     string
		criteria any
	}{
		{name: "nil criteria", criteria: nil},
		{name: "empty object", criteria: map[string]any{}},
		{name: "empty object string", criteria: "{}"},
		{name: "empty list", criteria: []any{}},
		{name: "empty string", criteria: ""},
		{name: "json null", criteria: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !m.Matches(context.Background(), data, tt.criteria) {
				t.Errorf("Matches() = false, want true for %v", tt.criteria)
			}
		})
	}
}

func TestMatcher_Matches_UnparsableNeverMatches(t *testing.T) {
	m := testMatcher()
	if m.Matches(context.Background(), map[string]any{"a": 1}, "{not json") {
		t.Error("Matches() = true for unparsable criteria, want false")
	}
}

func TestMatcher_Matches_Operators(t *testing.T) {
	m := testMatcher()

	tests := []struct {
		name     string
		data     map[string]any
		criteria string
		want     bool
	}{
		{name: "gt match", data: map[string]any{"score": 9.0}, criteria: `{"score": ">8"}`, want: true},
		{name: "gt no match", data: map[string]any{"score": 7.0}, criteria: `{"score": ">8"}`, want: false},
		{name: "lt match", data: map[string]any{"score": 7.0}, criteria: `{"score": "<8"}`, want: true},
		{name: "lt no match", data: map[string]any{"score": 9.0}, criteria: `{"score": "<8"}`, want: false},
		{name: "gte boundary", data: map[string]any{"score": 8.0}, criteria: `{"score": ">=8"}`, want: true},
		{name: "lte boundary", data: map[string]any{"score": 8.0}, criteria: `{"score": "<=8"}`, want: true},
		{name: "neq match", data: map[string]any{"score": 7.0}, criteria: `{"score": "!=8"}`, want: true},
		{name: "neq no match", data: map[string]any{"score": 8.0}, criteria: `{"score": "!=8"}`, want: false},
		{name: "numeric string coercion", data: map[string]any{"score": 8.0}, criteria: `{"score": "8"}`, want: true},
		{name: "string equality trimmed", data: map[string]any{"channel": "web"}, criteria: `{"channel": " web "}`, want: true},
		{name: "multiple keys ANDed", data: map[string]any{"score": 9.0, "channel": "web"}, criteria: `{"score": ">8", "channel": "web"}`, want: true},
		{name: "one failing key fails all", data: map[string]any{"score": 9.0, "channel": "app"}, criteria: `{"score": ">8", "channel": "web"}`, want: false},
		{name: "missing key fails comparison", data: map[string]any{}, criteria: `{"score": ">8"}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(context.Background(), tt.data, tt.criteria); got != tt.want {
				t.Errorf("Matches(%v, %s) = %v, want %v", tt.data, tt.criteria, got, tt.want)
			}
		})
	}
}

func TestMatcher_Matches_LegacyListShape(t *testing.T) {
	m := testMatcher()
	data := map[string]any{"q1": "yes", "q2": 8.0}

	criteria := `[{"question": "q1", "answer": "yes"}, {"question": "q2", "answer": "8"}]`
	if !m.Matches(context.Background(), data, criteria) {
		t.Error("Matches() = false for matching legacy list, want true")
	}

	criteria = `[{"question": "q1", "answer": "no"}]`
	if m.Matches(context.Background(), data, criteria) {
		t.Error("Matches() = true for non-matching legacy list, want false")
	}
}

func TestEvaluate_NilExpected(t *testing.T) {
	if !Evaluate(nil, nil) {
		t.Error("Evaluate(nil, nil) = false, want true")
	}
	if Evaluate("x", nil) {
		t.Error(`Evaluate("x", nil) = true, want false`)
	}
}
