package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestGetUserIDNumericForms(t *testing.T) {
	e := echo.New()
	cases := []struct {
		name string
		val  interface{}
		want uint64
	}{
		{"uint64", uint64(7), 7},
		{"int", int(7), 7},
		{"int64", int64(7), 7},
		{"float64 from jwt claims", float64(7), 7},
		{"string", "7", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			c.Set("user_id", tc.val)
			got, err := getUserID(c)
			if err != nil {
				t.Fatalf("getUserID: %v", err)
			}
			if got != tc.want {
				t.Errorf("getUserID = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGetUserIDMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if _, err := getUserID(c); err == nil {
		t.Fatal("expected error for missing user_id")
	}
}

func TestStartInPast(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	day := func(s string) time.Time {
		d, err := parseDate(s)
		if err != nil {
			t.Fatalf("parseDate(%q): %v", s, err)
		}
		return d
	}
	cases := []struct {
		name      string
		date      string
		startTime string
		want      bool
	}{
		{"yesterday", "2025-08-31", "23:00", true},
		{"tomorrow", "2025-09-02", "00:00", false},
		{"today earlier", "2025-09-01", "09:00", true},
		{"today exactly now", "2025-09-01", "10:30", false},
		{"today later", "2025-09-01", "11:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := startInPast(day(tc.date), tc.startTime, now); got != tc.want {
				t.Errorf("startInPast(%s %s) = %v, want %v", tc.date, tc.startTime, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-09-01")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Year() != 2025 || d.Month() != 9 || d.Day() != 1 {
		t.Errorf("parsed %v, want 2025-09-01", d)
	}
	if _, err := parseDate("01-09-2025"); err == nil {
		t.Error("expected error for wrong date layout")
	}
}
