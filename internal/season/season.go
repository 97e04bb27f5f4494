package season

import (
	"math"
	"time"
)

// Rules selects how a league labels its seasons relative to the calendar.
type Rules int

const (
	// Basketball labels a season by the year it ends: from August onward the
	// label is next year's (the 2025-26 season is "2026").
	Basketball Rules = iota
	// Football labels a season by the year it starts: before August the label
	// still belongs to the previous season.
	Football
)

const boundaryMonth = time.August

// Label returns the season label for the given date under the league rules.
func Label(date time.Time, rules Rules) int {
	year := date.UTC().Year()
	afterBoundary := date.UTC().Month() >= boundaryMonth
	switch rules {
	case Football:
		if afterBoundary {
			return year
		}
		return year - 1
	default:
		if afterBoundary {
			return year + 1
		}
		return year
	}
}

// StartDate returns the season kickoff anchor for a football-style season:
// the first Monday of September (Labor Day) plus three days, midnight UTC.
func StartDate(year int) time.Time {
	laborDay := firstWeekdayOfSeptember(year, time.Monday)
	return laborDay.AddDate(0, 0, 3)
}

func firstWeekdayOfSeptember(year int, weekday time.Weekday) time.Time {
	first := time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset)
}

// CurrentWeek returns 0 before the season start, otherwise the 1-based week
// number counted in 7-day steps from the start date. January and February
// still count against the prior year's start.
func CurrentWeek(date time.Time) int {
	year := date.UTC().Year()
	if date.UTC().Month() <= time.February {
		year--
	}
	start := StartDate(year)
	if date.Before(start) {
		return 0
	}
	days := int(date.Sub(start).Hours() / 24)
	return days/7 + 1
}

// ClampWeek coerces value into [min, max]. Non-finite input becomes min and
// fractional input truncates toward zero.
func ClampWeek(value float64, min, max int) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return min
	}
	n := int(value)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
