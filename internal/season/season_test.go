package season

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		rules Rules
		want  int
	}{
		{"basketball before boundary", date(2025, time.July, 1), Basketball, 2025},
		{"basketball at boundary", date(2025, time.August, 1), Basketball, 2026},
		{"basketball after boundary", date(2025, time.September, 1), Basketball, 2026},
		{"basketball mid winter", date(2026, time.January, 15), Basketball, 2026},
		{"football before boundary", date(2025, time.July, 1), Football, 2024},
		{"football at boundary", date(2025, time.August, 1), Football, 2025},
		{"football january", date(2026, time.January, 15), Football, 2025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.date, tt.rules); got != tt.want {
				t.Errorf("Label(%v, %v) = %d, want %d", tt.date, tt.rules, got, tt.want)
			}
		})
	}
}

func TestStartDate(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		// Labor Day 2024 is Mon Sep 2; kickoff Thursday Sep 5.
		{2024, date(2024, time.September, 5)},
		// Labor Day 2025 is Mon Sep 1; kickoff Thursday Sep 4.
		{2025, date(2025, time.September, 4)},
		// Sep 1 2019 is a Sunday, so Labor Day is Sep 2.
		{2019, date(2019, time.September, 5)},
	}
	for _, tt := range tests {
		got := StartDate(tt.year)
		if !got.Equal(tt.want) {
			t.Errorf("StartDate(%d) = %v, want %v", tt.year, got, tt.want)
		}
		if got.Weekday() != time.Thursday {
			t.Errorf("StartDate(%d) falls on %v, want Thursday", tt.year, got.Weekday())
		}
	}
}

func TestCurrentWeek(t *testing.T) {
	start := StartDate(2025)
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"before start", start.AddDate(0, 0, -1), 0},
		{"opening day", start, 1},
		{"six days in", start.AddDate(0, 0, 6), 1},
		{"seven days in", start.AddDate(0, 0, 7), 2},
		{"three weeks in", start.AddDate(0, 0, 21), 4},
		{"january counts against prior year", date(2026, time.January, 4), 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentWeek(tt.date); got != tt.want {
				t.Errorf("CurrentWeek(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestClampWeek(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"within range", 7, 7},
		{"below min", 0, 1},
		{"negative", -3, 1},
		{"above max", 25, 18},
		{"fractional truncates", 7.9, 7},
		{"nan", math.NaN(), 1},
		{"positive inf", math.Inf(1), 1},
		{"negative inf", math.Inf(-1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampWeek(tt.value, 1, 18); got != tt.want {
				t.Errorf("ClampWeek(%v, 1, 18) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
