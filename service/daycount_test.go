package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kconstable/finance-tools/domain"
)

func TestDailyRate(t *testing.T) {

	got := DailyRate(0.0365)
	want := 0.0365 / 365

	if math.Abs(got-want) > 1e-15 {
		t.Errorf("expected %v, got %v", want, got)
	}

	if DailyRate(0) != 0 {
		t.Errorf("expected zero daily rate for zero annual rate")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day counts itself",
			from: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "full january",
			from: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			want: 31,
		},
		{
			name: "across leap day",
			from: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "time of day is ignored",
			from: time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDaysBetween_ReversedRange(t *testing.T) {

	_, err := DaysBetween(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	)

	if !errors.Is(err, domain.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "regular month",
			start:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "clamped to february",
			start:  time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "leap february",
			start:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year rollover keeps day",
			start:  time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addMonthsClamped(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
