package slotengine

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"24:01", 0, true},
		{"25:00", 0, true},
		{"9:00", 0, true},  // not zero-padded
		{"09-00", 0, true}, // wrong separator
		{"09:60", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 15 {
		s := FormatClock(m)
		if len(s) != 5 {
			t.Fatalf("FormatClock(%d) = %q, want five characters", m, s)
		}
		back, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)): %v", m, err)
		}
		if back != m {
			t.Fatalf("round trip of %d gave %d", m, back)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2025-09-01", Monday},
		{"2025-09-02", Tuesday},
		{"2025-09-05", Friday},
		{"2025-09-06", Saturday},
		// the Sunday edge is where the JS-style 0=Sunday convention and the
		// ISO 0=Monday convention diverge the hardest
		{"2025-09-07", Sunday},
		{"2025-09-08", Monday},
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tc.date, err)
		}
		if got := ISOWeekday(d); got != tc.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}
