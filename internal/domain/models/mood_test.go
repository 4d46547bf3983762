package models

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	lisbon := time.FixedZone("UTC+1", 3600)
	cases := []struct {
		name string
		in   time.Time
		loc  *time.Location
		want string
	}{
		{name: "utc midday", in: time.Date(2025, 9, 12, 12, 30, 0, 0, time.UTC), loc: time.UTC, want: "2025-09-12"},
		{name: "late utc is next day east", in: time.Date(2025, 9, 12, 23, 30, 0, 0, time.UTC), loc: lisbon, want: "2025-09-13"},
		{name: "nil location falls back to local", in: time.Date(2025, 9, 12, 12, 0, 0, 0, time.Local), loc: nil, want: "2025-09-12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DateOf(tc.in, tc.loc)
			if got.Format(DateLayout) != tc.want {
				t.Fatalf("DateOf=%s, want %s", got.Format(DateLayout), tc.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Fatalf("time component not stripped: %v", got)
			}
		})
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 9, 12, 0, 0, 0, 0, time.FixedZone("X", -5*3600))
	if !SameDate(a, b) {
		t.Fatalf("expected same calendar date")
	}
	if SameDate(a, a.AddDate(0, 0, 1)) {
		t.Fatalf("expected different dates")
	}
}
