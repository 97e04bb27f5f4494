package espn

import (
	"strings"
	"time"

	"github.com/mcirin3/sports-info/internal/models"
	"github.com/mcirin3/sports-info/internal/status"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05Z",
}

// MapEvent converts a raw ESPN event into the canonical Game. Every missing
// field has a default; a malformed record never fails the request.
func MapEvent(ev *Event) models.Game {
	comp := ev.FirstCompetition()
	var competitors []Competitor
	if comp != nil {
		competitors = comp.Competitors
	}
	home := pickSide(competitors, "home", 0)
	away := pickSide(competitors, "away", 1)

	st := ev.Status
	if comp != nil && comp.Status != nil {
		st = comp.Status
	}
	var state, detail, clock string
	var period int
	if st != nil {
		period = st.Period
		clock = st.DisplayClock
		if st.Type != nil {
			state = strings.ToLower(st.Type.State)
			detail = firstNonEmpty(st.Type.ShortDetail, st.Type.Detail, st.Type.Description)
		}
	}

	game := models.Game{
		ID:     int(ev.ID),
		Date:   eventDate(ev, comp),
		Season: seasonYear(ev),
		Status: status.Map(state, period, detail),
		Home:   mapSide(home, "Home"),
		Away:   mapSide(away, "Away"),
	}
	if state == "in" {
		if period > 0 {
			game.Period = period
		}
		game.Clock = clock
	}
	if comp != nil {
		game.TV = collectBroadcasts(comp)
	}
	game.GameURL = gamecastURL(ev)
	return game
}

// MapEvents converts a batch, preserving order.
func MapEvents(events []Event) []models.Game {
	games := make([]models.Game, 0, len(events))
	for i := range events {
		games = append(games, MapEvent(&events[i]))
	}
	return games
}

func pickSide(competitors []Competitor, role string, fallbackIdx int) *Competitor {
	for i := range competitors {
		if strings.EqualFold(competitors[i].HomeAway, role) {
			return &competitors[i]
		}
	}
	if fallbackIdx < len(competitors) {
		return &competitors[fallbackIdx]
	}
	return nil
}

func mapSide(c *Competitor, defaultName string) models.GameSide {
	side := models.GameSide{Team: models.Team{Name: defaultName}}
	if c == nil {
		return side
	}
	side.Score = c.Score.Int()
	side.Team.ID = c.TeamID()
	if c.Team != nil {
		side.Team.Name = firstNonEmpty(c.Team.DisplayName, c.Team.Name, defaultName)
		side.Team.Code = c.Team.Abbreviation
		side.Team.Logo = teamLogo(c.Team)
	}
	return side
}

func teamLogo(t *TeamRef) string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}

func eventDate(ev *Event, comp *Competition) string {
	if comp != nil && comp.Date != "" {
		return comp.Date
	}
	if ev.Date != "" {
		return ev.Date
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func seasonYear(ev *Event) int {
	if ev.Season != nil && ev.Season.Year > 0 {
		return ev.Season.Year
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, ev.Date); err == nil {
			return ts.UTC().Year()
		}
	}
	return time.Now().UTC().Year()
}

func collectBroadcasts(comp *Competition) []string {
	names := broadcastNames(comp.GeoBroadcasts)
	if len(names) > 0 {
		return names
	}
	return broadcastNames(comp.Broadcasts)
}

func broadcastNames(list []Broadcast) []string {
	var names []string
	for i := range list {
		if name := list[i].Name(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func gamecastURL(ev *Event) string {
	for _, link := range ev.Links {
		if strings.Contains(strings.ToLower(link.Text), "gamecast") {
			return link.Href
		}
	}
	for _, link := range ev.Links {
		for _, rel := range link.Rel {
			if strings.Contains(strings.ToLower(rel), "gamecast") {
				return link.Href
			}
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
