package datemath_test

import (
	"errors"
	"testing"
	"time"

	"syncnotes/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error for empty timezone: %v", err)
	}
	if p.Location() != time.UTC {
		t.Errorf("expected UTC for empty timezone, got %v", p.Location())
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Canonical date", relative: "2024-06-15", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow mixed case", relative: " Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "By tomorrow", relative: "by tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 1 day", relative: "in 1 day", want: startOfBase.AddDate(0, 0, 1)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", wantErr: true},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{name: "This Wednesday (from Wed)", relative: "this wednesday", want: startOfBase},
		{name: "This Friday", relative: "this friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "By Friday", relative: "by Friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Bare weekday today", relative: "wednesday", want: startOfBase},
		{name: "Next week starts Monday", relative: "next week", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Unknown weekday", relative: "next funday", wantErr: true},
		{name: "Unknown phrase", relative: "end of the sprint", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Errorf("expected ErrUnrecognized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

func TestParse_NextWeekFromMonday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	monday := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	got, err := parser.Parse("next week", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_TimezoneBoundary(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 20:00 UTC on May 1 is already May 2 in UTC+7.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	got, err := parser.Parse("today", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 2 || got.Month() != time.May {
		t.Errorf("expected May 2 in local zone, got %v", got)
	}
}
