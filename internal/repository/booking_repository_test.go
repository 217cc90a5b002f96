package repository

import (
	"testing"
	"time"
)

func TestDateStrUsesCalendarDateOnly(t *testing.T) {
	d := time.Date(2025, 9, 1, 23, 59, 0, 0, time.UTC)
	if got := dateStr(d); got != "2025-09-01" {
		t.Fatalf("dateStr = %q, want %q", got, "2025-09-01")
	}
}

func TestUTCTodayMatchesAppClock(t *testing.T) {
	// The cancel cutoff must compare against the app's UTC date, not the DB
	// session's local date, so both sides of a booking's lifecycle agree on
	// what "today" means.
	want := time.Now().UTC().Format("2006-01-02")
	got := utcToday()
	if got != want {
		// Re-read in case the test straddled midnight.
		if rewant := time.Now().UTC().Format("2006-01-02"); got != rewant {
			t.Fatalf("utcToday = %q, want %q", got, rewant)
		}
	}
}
