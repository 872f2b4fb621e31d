package criteria

import (
	"context"
	"encoding/json"
	"strings"
)

// Matches reports whether data satisfies criteria.
//
// Criteria may be passed raw (JSON string / []byte / json.RawMessage, as
// stored in the database) or already decoded. Absent, empty-object and
// empty-list criteria always match. A non-empty criteria string that fails to
// parse never matches; the incident is logged and the ingestion path carries
// on, erring toward under-triggering.
func (m *Matcher) Matches(ctx context.Context, data map[string]any, criteria any) bool {
	decoded, ok := m.decode(ctx, criteria)
	if !ok {
		return false
	}

	switch c := decoded.(type) {
	case nil:
		return true
	case map[string]any:
		for key, expected := range c {
			if !Evaluate(data[key], expected) {
				return false
			}
		}
		return true
	case []any:
		for _, item := range c {
			cond, ok := item.(map[string]any)
			if !ok {
				return false
			}
			question := stringify(cond["question"])
			if !Evaluate(data[question], cond["answer"]) {
				return false
			}
		}
		return true
	default:
		m.l.Warnf(ctx, "pkg.criteria.Matches: unsupported criteria shape %T", decoded)
		return false
	}
}

// decode normalizes the stored criteria column into a decoded JSON value.
// The second return is false only for unparsable non-empty input.
func (m *Matcher) decode(ctx context.Context, criteria any) (any, bool) {
	var raw string
	switch c := criteria.(type) {
	case nil:
		return nil, true
	case string:
		raw = c
	case []byte:
		raw = string(c)
	case json.RawMessage:
		raw = string(c)
	case map[string]any:
		if len(c) == 0 {
			return nil, true
		}
		return c, true
	case []any:
		if len(c) == 0 {
			return nil, true
		}
		return c, true
	default:
		m.l.Warnf(ctx, "pkg.criteria.decode: unsupported criteria type %T", criteria)
		return nil, false
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "{}" || raw == "[]" || raw == "null" {
		return nil, true
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		m.l.Warnf(ctx, "pkg.criteria.decode: unparsable criteria %q: %v", raw, err)
		return nil, false
	}

	switch d := decoded.(type) {
	case map[string]any:
		if len(d) == 0 {
			return nil, true
		}
	case []any:
		if len(d) == 0 {
			return nil, true
		}
	}

	return decoded, true
}

// Evaluate tests one (actual, expected) pair.
//
// A nil expected requires a nil actual. An expected value whose string form
// starts with >=, <=, >, < or != compares the remainder numerically against
// actual. Anything else falls back to loose equality (numeric first, trimmed
// string second), so 8 matches "8".
func Evaluate(actual, expected any) bool {
	if expected == nil {
		return actual == nil
	}

	exp := strings.TrimSpace(stringify(expected))

	for _, op := range []string{">=", "<=", "!="} {
		if strings.HasPrefix(exp, op) {
			return compare(op, parseFloat(actual), parseFloat(exp[len(op):]))
		}
	}
	for _, op := range []string{">", "<"} {
		if strings.HasPrefix(exp, op) {
			return compare(op, parseFloat(actual), parseFloat(exp[len(op):]))
		}
	}

	return coerceEqual(actual, expected)
}

func compare(op string, actual, expected float64) bool {
	switch op {
	case ">=":
		return actual >= expected
	case "<=":
		return actual <= expected
	case ">":
		return actual > expected
	case "<":
		return actual < expected
	case "!=":
		return actual != expected
	default:
		return false
	}
}
