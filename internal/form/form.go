package form

import (
	"fmt"
	"math"
	"strings"

	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/models"
)

// Summarize reduces a team's schedule to its last `limit` completed games:
// points-for/against averages and a W-L record. The win count trusts the
// provider's winner flag rather than comparing scores, because upstream marks
// winners for overtime and forfeit cases a naive comparison would miss.
func Summarize(events []espn.Event, teamID, limit int) models.TeamFormSummary {
	var finals []*espn.Event
	for i := range events {
		if events[i].Completed() {
			finals = append(finals, &events[i])
		}
	}
	if limit > 0 && len(finals) > limit {
		finals = finals[len(finals)-limit:]
	}

	summary := models.TeamFormSummary{TeamID: teamID}
	var pf, pa, wins int
	for _, ev := range finals {
		comp := ev.FirstCompetition()
		var competitors []espn.Competitor
		if comp != nil {
			competitors = comp.Competitors
		}
		me := matchCompetitor(competitors, teamID, true, 0)
		opp := matchCompetitor(competitors, teamID, false, 1)

		myScore := score(me)
		oppScore := score(opp)
		pf += myScore
		pa += oppScore
		won := me != nil && me.Winner
		if won {
			wins++
		}

		game := models.FormGame{
			ID:  int(ev.ID),
			PF:  myScore,
			PA:  oppScore,
			Won: won,
		}
		game.Date = ev.Date
		game.HomeAway = homeAway(me)
		game.Opponent = opponentTeam(opp)
		summary.Games = append(summary.Games, game)
	}

	n := len(summary.Games)
	div := float64(n)
	if div < 1 {
		div = 1
	}
	summary.Sample = n
	summary.PFAvg = round1(float64(pf) / div)
	summary.PAAvg = round1(float64(pa) / div)
	summary.RecordLastN = fmt.Sprintf("%d-%d", wins, n-wins)
	return summary
}

// matchCompetitor finds the record whose team id does (or does not) match,
// falling back to a positional index since providers sometimes omit nested
// ids.
func matchCompetitor(competitors []espn.Competitor, teamID int, wantMatch bool, fallbackIdx int) *espn.Competitor {
	for i := range competitors {
		if (competitors[i].TeamID() == teamID) == wantMatch {
			return &competitors[i]
		}
	}
	if fallbackIdx < len(competitors) {
		return &competitors[fallbackIdx]
	}
	return nil
}

func score(c *espn.Competitor) int {
	if c == nil {
		return 0
	}
	return c.Score.Int()
}

func homeAway(c *espn.Competitor) string {
	if c == nil || c.HomeAway == "" {
		return "home"
	}
	return strings.ToLower(c.HomeAway)
}

func opponentTeam(c *espn.Competitor) models.Team {
	team := models.Team{Name: "Team"}
	if c == nil {
		return team
	}
	team.ID = c.TeamID()
	if c.Team != nil {
		if c.Team.DisplayName != "" {
			team.Name = c.Team.DisplayName
		} else if c.Team.Name != "" {
			team.Name = c.Team.Name
		}
		team.Code = c.Team.Abbreviation
		if c.Team.Logo != "" {
			team.Logo = c.Team.Logo
		} else if len(c.Team.Logos) > 0 {
			team.Logo = c.Team.Logos[0].Href
		}
	}
	return team
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
