package status

import "strings"

// Status is the canonical game state every provider vocabulary maps into.
type Status string

const (
	NotStarted Status = "NS"
	Q1         Status = "Q1"
	Q2         Status = "Q2"
	Q3         Status = "Q3"
	Q4         Status = "Q4"
	Overtime   Status = "OT"
	Final      Status = "FT"
)

var byPeriod = [...]Status{Q1, Q2, Q3, Q4}

// Map normalizes a provider status triple (lifecycle state, period counter,
// free-text detail) into the canonical enum. Unknown states default to
// NotStarted unless the detail text says the game is final.
func Map(state string, period int, detail string) Status {
	switch strings.ToLower(state) {
	case "pre":
		return NotStarted
	case "post":
		return Final
	case "in":
		if period >= 1 && period <= 4 {
			return byPeriod[period-1]
		}
		if period >= 5 {
			return Overtime
		}
		return Q1
	}
	if ContainsFinal(detail) {
		return Final
	}
	return NotStarted
}

// Live reports whether the status describes an in-progress game.
func (s Status) Live() bool {
	switch s {
	case Q1, Q2, Q3, Q4, Overtime:
		return true
	}
	return false
}

// ContainsFinal reports whether free-text status copy marks a finished game.
func ContainsFinal(detail string) bool {
	return strings.Contains(strings.ToLower(detail), "final")
}
