package domain

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	in := time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.UTC)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := DayOf(in); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Non-UTC input truncates on the UTC calendar.
	loc := time.FixedZone("UTC+5", 5*3600)
	in = time.Date(2024, 3, 15, 2, 0, 0, 0, loc)
	want = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := DayOf(in); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "plain ISO date",
			input: "2024-01-10",
			want:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "RFC 3339 timestamp",
			input: "2024-01-10T15:04:05Z",
			want:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "RFC 3339 with offset",
			input: "2024-01-10T23:30:00-05:00",
			want:  time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "garbage",
			input: "not-a-date",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDay(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("expected same day")
	}

	c := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	if SameDay(a, c) {
		t.Error("expected different days")
	}
}
