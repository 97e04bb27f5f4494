package h2h

import (
	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/models"
)

// Report compares two teams: each team's season scoring averages plus the
// win split over their most recent meetings.
type Report struct {
	A      models.TeamAverages `json:"a"`
	B      models.TeamAverages `json:"b"`
	Recent RecentSplit         `json:"recent"`
}

// RecentSplit is the head-to-head outcome over the last meetings.
type RecentSplit struct {
	Games int `json:"games"`
	AWins int `json:"aWins"`
	BWins int `json:"bWins"`
}

// TeamAverages reduces a team's season games to per-game scoring numbers.
// The pace proxy is combined points per game.
func TeamAverages(games []apisports.Game, teamID int) models.TeamAverages {
	var scored, allowed, n int
	for i := range games {
		g := &games[i]
		home := g.Teams.Home.ID == teamID
		hs := g.Scores.Home.Points()
		as := g.Scores.Away.Points()
		if home {
			scored += hs
			allowed += as
		} else {
			scored += as
			allowed += hs
		}
		n++
	}
	div := float64(n)
	if div < 1 {
		div = 1
	}
	return models.TeamAverages{
		TeamID:    teamID,
		PPG:       float64(scored) / div,
		OPPG:      float64(allowed) / div,
		PaceProxy: float64(scored+allowed) / div,
	}
}

// Split tallies wins for team A over the last `limit` meetings. Here the win
// is decided by score comparison because the meetings feed carries no winner
// flag.
func Split(meetings []apisports.Game, teamA, limit int) RecentSplit {
	if limit > 0 && len(meetings) > limit {
		meetings = meetings[len(meetings)-limit:]
	}
	split := RecentSplit{Games: len(meetings)}
	for i := range meetings {
		g := &meetings[i]
		aHome := g.Teams.Home.ID == teamA
		hs := g.Scores.Home.Points()
		as := g.Scores.Away.Points()
		if (aHome && hs > as) || (!aHome && as > hs) {
			split.AWins++
		}
	}
	split.BWins = split.Games - split.AWins
	return split
}
