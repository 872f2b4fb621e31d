// Package period maps reset-period kinds and timestamps to canonical bucket
// identifiers. Keys are shared between quota reset logic and the period
// counters, so two timestamps get the same key iff they fall in the same
// calendar bucket. All bucketing uses UTC.
package period

import (
	"fmt"
	"time"
)

// Reset-period kinds.
const (
	Never   = "never"
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
)

// IsPeriodic reports whether periodType is one of the bucketed kinds.
func IsPeriodic(periodType string) bool {
	switch periodType {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}

// Key returns the bucket identifier for the given period kind and timestamp.
// The second return is false for "never", empty and unrecognized kinds, in
// which case the caller must fall back to the stored absolute counter.
func Key(periodType string, at time.Time) (string, bool) {
	at = at.UTC()

	switch periodType {
	case Daily:
		return fmt.Sprintf("daily:%s", at.Format("2006-01-02")), true
	case Monthly:
		return fmt.Sprintf("monthly:%s", at.Format("2006-01")), true
	case Weekly:
		// ISO-8601 week: the week belongs to the year of its Thursday.
		year, week := at.ISOWeek()
		return fmt.Sprintf("weekly:%d-W%d", year, week), true
	default:
		return "", false
	}
}

// SameBucket reports whether a and b fall into the same bucket of periodType.
// Non-periodic kinds never bucket, so SameBucket returns false for them.
func SameBucket(periodType string, a, b time.Time) bool {
	ka, ok := Key(periodType, a)
	if !ok {
		return false
	}
	kb, _ := Key(periodType, b)
	return ka == kb
}
