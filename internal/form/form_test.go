package form

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mcirin3/sports-info/internal/espn"
)

// completedGame builds a final with the subject team (id 7) scoring pf and
// allowing pa.
func completedGame(t *testing.T, id, pf, pa int, won bool) espn.Event {
	t.Helper()
	raw := fmt.Sprintf(`{
		"id": "%d",
		"date": "2026-01-%02dT00:00Z",
		"status": {"type": {"state": "post", "completed": true}},
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "winner": %t, "score": "%d", "team": {"id": "7", "displayName": "Subject"}},
				{"homeAway": "away", "winner": %t, "score": "%d", "team": {"id": "8", "displayName": "Opponent"}}
			]
		}]
	}`, id, id, won, pf, !won, pa)
	var ev espn.Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("build event: %v", err)
	}
	return ev
}

func scheduledGame(t *testing.T, id int) espn.Event {
	t.Helper()
	raw := fmt.Sprintf(`{"id": "%d", "status": {"type": {"state": "pre"}}}`, id)
	var ev espn.Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("build event: %v", err)
	}
	return ev
}

func TestSummarize(t *testing.T) {
	events := []espn.Event{
		completedGame(t, 1, 100, 90, true),
		completedGame(t, 2, 110, 120, false),
		completedGame(t, 3, 105, 101, true),
		completedGame(t, 4, 112, 108, true),
		completedGame(t, 5, 115, 119, false),
		scheduledGame(t, 6),
	}

	summary := Summarize(events, 7, 5)

	if summary.Sample != 5 {
		t.Fatalf("Sample = %d, want 5", summary.Sample)
	}
	if summary.RecordLastN != "3-2" {
		t.Errorf("RecordLastN = %q, want 3-2", summary.RecordLastN)
	}
	// (100+110+105+112+115)/5 = 108.4, (90+120+101+108+119)/5 = 107.6
	if summary.PFAvg != 108.4 {
		t.Errorf("PFAvg = %v, want 108.4", summary.PFAvg)
	}
	if summary.PAAvg != 107.6 {
		t.Errorf("PAAvg = %v, want 107.6", summary.PAAvg)
	}
	if len(summary.Games) != 5 {
		t.Fatalf("Games = %d, want 5", len(summary.Games))
	}
	for _, g := range summary.Games {
		if g.Opponent.ID != 8 {
			t.Errorf("game %d opponent id = %d, want 8", g.ID, g.Opponent.ID)
		}
		if g.HomeAway != "home" {
			t.Errorf("game %d homeAway = %q, want home", g.ID, g.HomeAway)
		}
	}
}

func TestSummarizeLimitKeepsMostRecent(t *testing.T) {
	events := []espn.Event{
		completedGame(t, 1, 90, 100, false),
		completedGame(t, 2, 100, 90, true),
		completedGame(t, 3, 101, 95, true),
	}
	summary := Summarize(events, 7, 2)
	if summary.Sample != 2 {
		t.Fatalf("Sample = %d, want 2", summary.Sample)
	}
	if summary.Games[0].ID != 2 || summary.Games[1].ID != 3 {
		t.Errorf("kept games %d, %d; want the last two (2, 3)", summary.Games[0].ID, summary.Games[1].ID)
	}
	if summary.RecordLastN != "2-0" {
		t.Errorf("RecordLastN = %q, want 2-0", summary.RecordLastN)
	}
}

func TestSummarizeWinsTrustProviderFlag(t *testing.T) {
	// Score says loss, winner flag says win (e.g. forfeit). The flag wins.
	events := []espn.Event{completedGame(t, 1, 90, 100, true)}
	summary := Summarize(events, 7, 5)
	if summary.RecordLastN != "1-0" {
		t.Errorf("RecordLastN = %q, want 1-0", summary.RecordLastN)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, 7, 5)
	if summary.Sample != 0 {
		t.Errorf("Sample = %d, want 0", summary.Sample)
	}
	if summary.PFAvg != 0 || summary.PAAvg != 0 {
		t.Errorf("averages = %v/%v, want 0/0", summary.PFAvg, summary.PAAvg)
	}
	if summary.RecordLastN != "0-0" {
		t.Errorf("RecordLastN = %q, want 0-0", summary.RecordLastN)
	}
}
