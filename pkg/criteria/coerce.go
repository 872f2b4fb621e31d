package criteria

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// stringify renders a decoded JSON value the way the rest of the platform
// renders answers: numbers without trailing zeros, booleans as true/false,
// nil as the empty string (missing keys read as empty).
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// parseFloat converts a value to float64, returning NaN when it does not
// parse. NaN propagates through the comparison operators the same way the
// stored criteria have always behaved: every ordered comparison fails and
// "!=" succeeds.
func parseFloat(v any) float64 {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// coerceEqual implements the loose equality the criteria language relies on:
// numeric parse first (so 8 == "8"), trimmed string comparison second.
func coerceEqual(actual, expected any) bool {
	af, ef := parseFloat(actual), parseFloat(expected)
	if !math.IsNaN(af) && !math.IsNaN(ef) {
		return af == ef
	}
	return strings.TrimSpace(stringify(actual)) == strings.TrimSpace(stringify(expected))
}
