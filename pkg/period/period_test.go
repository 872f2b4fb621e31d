package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestKey_Daily(t *testing.T) {
	k1, ok := Key(Daily, date(2025, time.June, 15, 12))
	if !ok || k1 != "daily:2025-06-15" {
		t.Fatalf("Key(daily) = %q, %v", k1, ok)
	}

	k2, _ := Key(Daily, date(2025, time.June, 15, 23))
	if k1 != k2 {
		t.Errorf("same UTC day produced different keys: %q vs %q", k1, k2)
	}

	k3, _ := Key(Daily, date(2025, time.June, 16, 0))
	if k1 == k3 {
		t.Errorf("different UTC days produced equal keys: %q", k1)
	}
}

func TestKey_Monthly(t *testing.T) {
	k, ok := Key(Monthly, date(2025, time.June, 15, 0))
	if !ok || k != "monthly:2025-06" {
		t.Fatalf("Key(monthly) = %q, %v", k, ok)
	}

	k2, _ := Key(Monthly, date(2025, time.June, 30, 23))
	if k != k2 {
		t.Errorf("same month produced different keys: %q vs %q", k, k2)
	}

	k3, _ := Key(Monthly, date(2025, time.July, 1, 0))
	if k == k3 {
		t.Errorf("different months produced equal keys: %q", k)
	}
}

func TestKey_Weekly(t *testing.T) {
	// 2025-06-16 (Mon) and 2025-06-17 (Tue) share ISO week 25.
	k1, ok := Key(Weekly, date(2025, time.June, 16, 0))
	if !ok {
		t.Fatal("Key(weekly) not ok")
	}
	k2, _ := Key(Weekly, date(2025, time.June, 17, 0))
	if k1 != k2 {
		t.Errorf("same ISO week produced different keys: %q vs %q", k1, k2)
	}

	// 2025-06-09 (Mon) is the prior ISO week.
	k3, _ := Key(Weekly, date(2025, time.June, 9, 0))
	if k1 == k3 {
		t.Errorf("different ISO weeks produced equal keys: %q", k1)
	}
}

func TestKey_WeeklyYearBoundary(t *testing.T) {
	// 2024-12-30 (Mon) belongs to ISO week 1 of 2025.
	k, ok := Key(Weekly, date(2024, time.December, 30, 0))
	if !ok || k != "weekly:2025-W1" {
		t.Errorf("Key(weekly, 2024-12-30) = %q, want weekly:2025-W1", k)
	}
}

func TestKey_NonPeriodic(t *testing.T) {
	for _, pt := range []string{"", Never, "yearly", "hourly"} {
		if k, ok := Key(pt, time.Now()); ok {
			t.Errorf("Key(%q) = %q, ok; want no bucketing", pt, k)
		}
	}
}

func TestSameBucket(t *testing.T) {
	a := date(2025, time.June, 15, 12)
	b := date(2025, time.June, 15, 23)
	c := date(2025, time.June, 16, 1)

	if !SameBucket(Daily, a, b) {
		t.Error("SameBucket(daily, same day) = false")
	}
	if SameBucket(Daily, a, c) {
		t.Error("SameBucket(daily, different days) = true")
	}
	if SameBucket(Never, a, a) {
		t.Error("SameBucket(never) = true, want false")
	}
}
