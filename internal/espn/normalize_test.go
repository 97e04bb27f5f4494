package espn

import (
	"encoding/json"
	"testing"

	"github.com/mcirin3/sports-info/internal/status"
)

func TestMapEvent(t *testing.T) {
	raw := `{
		"id": "401585601",
		"date": "2026-01-15T00:30Z",
		"season": {"year": 2026},
		"status": {"period": 3, "displayClock": "4:21", "type": {"state": "in", "shortDetail": "3rd Quarter"}},
		"competitions": [{
			"competitors": [
				{"homeAway": "away", "score": "101", "team": {"id": "5", "displayName": "Chicago Bulls", "abbreviation": "CHI"}},
				{"homeAway": "home", "score": {"value": 99}, "team": {"id": "13", "displayName": "Los Angeles Lakers", "abbreviation": "LAL"}}
			],
			"broadcasts": [{"media": {"shortName": "ESPN"}}]
		}],
		"links": [{"text": "Gamecast", "href": "https://example.com/game"}]
	}`
	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}

	game := MapEvent(&ev)
	if game.ID != 401585601 {
		t.Errorf("ID = %d, want 401585601", game.ID)
	}
	if game.Season != 2026 {
		t.Errorf("Season = %d, want 2026", game.Season)
	}
	if game.Status != status.Q3 {
		t.Errorf("Status = %q, want Q3", game.Status)
	}
	if game.Period != 3 || game.Clock != "4:21" {
		t.Errorf("Period/Clock = %d/%q, want 3/4:21", game.Period, game.Clock)
	}
	if game.Home.Team.Name != "Los Angeles Lakers" || game.Home.Score != 99 {
		t.Errorf("home side = %+v, want Lakers with 99", game.Home)
	}
	if game.Away.Team.Name != "Chicago Bulls" || game.Away.Score != 101 {
		t.Errorf("away side = %+v, want Bulls with 101", game.Away)
	}
	if len(game.TV) != 1 || game.TV[0] != "ESPN" {
		t.Errorf("TV = %v, want [ESPN]", game.TV)
	}
	if game.GameURL != "https://example.com/game" {
		t.Errorf("GameURL = %q", game.GameURL)
	}
}

func TestMapEventPositionalFallback(t *testing.T) {
	raw := `{
		"id": "7",
		"status": {"type": {"state": "pre"}},
		"competitions": [{
			"competitors": [
				{"score": "0", "team": {"id": "1", "displayName": "First"}},
				{"score": "0", "team": {"id": "2", "displayName": "Second"}}
			]
		}]
	}`
	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}

	game := MapEvent(&ev)
	if game.Home.Team.Name != "First" {
		t.Errorf("home fell back to %q, want First", game.Home.Team.Name)
	}
	if game.Away.Team.Name != "Second" {
		t.Errorf("away fell back to %q, want Second", game.Away.Team.Name)
	}
}

func TestMapEventEmpty(t *testing.T) {
	game := MapEvent(&Event{})
	if game.Home.Team.Name != "Home" || game.Away.Team.Name != "Away" {
		t.Errorf("defaults = %q/%q, want Home/Away", game.Home.Team.Name, game.Away.Team.Name)
	}
	if game.Status != status.NotStarted {
		t.Errorf("Status = %q, want NS", game.Status)
	}
	if game.Period != 0 || game.Clock != "" {
		t.Errorf("pregame carries period/clock: %d/%q", game.Period, game.Clock)
	}
}
