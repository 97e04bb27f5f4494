package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mcirin3/sports-info/internal/models"
	"github.com/mcirin3/sports-info/internal/status"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.CreateTables(context.Background()); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return store
}

func snapshot(gameID int, date string, homeScore int) models.GameSnapshot {
	game := models.Game{
		ID:     gameID,
		Date:   date,
		Season: 2026,
		Status: status.Q2,
		Home:   models.GameSide{Team: models.Team{ID: 1, Name: "Home"}, Score: homeScore},
		Away:   models.GameSide{Team: models.Team{ID: 2, Name: "Away"}, Score: 40},
	}
	return models.NewSnapshot("espn-nba", game, time.Now())
}

func TestUpsertSnapshotsLatestStateWins(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertSnapshots(ctx, []models.GameSnapshot{
		snapshot(1, "2026-01-15T00:30Z", 50),
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := store.UpsertSnapshots(ctx, []models.GameSnapshot{
		snapshot(1, "2026-01-15T00:30Z", 75),
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	games, err := store.GamesOn(ctx, "espn-nba", "2026-01-15")
	if err != nil {
		t.Fatalf("games on: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("got %d rows, want 1 (upsert, not append)", len(games))
	}
	if games[0].Home.Score != 75 {
		t.Errorf("home score = %d, want latest 75", games[0].Home.Score)
	}
}

func TestGamesOnFiltersBySourceAndDay(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertSnapshots(ctx, []models.GameSnapshot{
		snapshot(1, "2026-01-15T00:30Z", 50),
		snapshot(2, "2026-01-16T00:30Z", 60),
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	games, err := store.GamesOn(ctx, "espn-nba", "2026-01-15")
	if err != nil {
		t.Fatalf("games on: %v", err)
	}
	if len(games) != 1 || games[0].ID != 1 {
		t.Errorf("games = %v, want only game 1", games)
	}

	games, err = store.GamesOn(ctx, "espn-nfl", "2026-01-15")
	if err != nil {
		t.Fatalf("games on: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("foreign source returned %d rows, want 0", len(games))
	}
}

func TestUpsertOdds(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	point := -4.5
	odds := []models.GameOdds{{
		GameID: 9001,
		Home:   "Lakers",
		Away:   "Bulls",
		Best: []models.OddsQuote{
			{Bookmaker: "BookA", Market: models.MarketH2H, Label: "Home", Price: -200},
			{Bookmaker: "BookA", Market: models.MarketSpreads, Label: "Home", Price: -110, Point: &point},
		},
	}}

	if err := store.UpsertOdds(ctx, odds); err != nil {
		t.Fatalf("upsert odds: %v", err)
	}
	// Re-upserting the same selections must not error or duplicate.
	if err := store.UpsertOdds(ctx, odds); err != nil {
		t.Fatalf("re-upsert odds: %v", err)
	}
}
