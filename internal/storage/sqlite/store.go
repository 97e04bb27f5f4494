package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcirin3/sports-info/internal/hashutil"
	"github.com/mcirin3/sports-info/internal/models"
)

const (
	defaultPath = "data/sports.db"
)

// Store wraps a SQLite DB connection. It holds the latest observed state per
// game and per odds selection; rows are replaced on conflict, never appended.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database.
func Open(path string) (*Store, error) {
	if path == "" {
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureWAL(db); err != nil {
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

func ensureWAL(db *sql.DB) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	for i := 0; i < maxAttempts; i++ {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				time.Sleep(delay)
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("database is locked after retries")
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateTables ensures the games and odds tables exist.
func (s *Store) CreateTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return err
}

// DropTables removes the games and odds tables.
func (s *Store) DropTables(ctx context.Context) error {
	stmts := []string{
		`DROP TABLE IF EXISTS games;`,
		`DROP TABLE IF EXISTS odds_quotes;`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ClearTables truncates both tables.
func (s *Store) ClearTables(ctx context.Context) error {
	stmts := []string{
		`DELETE FROM games;`,
		`DELETE FROM odds_quotes;`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS games (
	source TEXT NOT NULL,
	game_id INTEGER NOT NULL,
	game_date TEXT,
	day TEXT,
	season INTEGER,
	status TEXT,
	period INTEGER,
	clock TEXT,
	home_team TEXT,
	home_score INTEGER,
	away_team TEXT,
	away_score INTEGER,
	state_hash TEXT,
	captured_at TEXT,
	game_json TEXT,
	PRIMARY KEY (source, game_id)
);
CREATE INDEX IF NOT EXISTS games_day_idx ON games(source, day);

CREATE TABLE IF NOT EXISTS odds_quotes (
	game_id INTEGER NOT NULL,
	market TEXT NOT NULL,
	label TEXT NOT NULL,
	point TEXT NOT NULL,
	bookmaker TEXT,
	price INTEGER,
	home_team TEXT,
	away_team TEXT,
	updated_at TEXT,
	PRIMARY KEY (game_id, market, label, point)
);
`

// UpsertSnapshots writes the latest state for each snapshotted game.
func (s *Store) UpsertSnapshots(ctx context.Context, snapshots []models.GameSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, gameUpsertSQL)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, snap := range snapshots {
		if err := execGameUpsert(ctx, stmt, snap); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

const gameUpsertSQL = `
INSERT INTO games (
	source, game_id, game_date, day, season, status, period, clock,
	home_team, home_score, away_team, away_score, state_hash, captured_at, game_json
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(source, game_id) DO UPDATE SET
	game_date=excluded.game_date,
	day=excluded.day,
	season=excluded.season,
	status=excluded.status,
	period=excluded.period,
	clock=excluded.clock,
	home_team=excluded.home_team,
	home_score=excluded.home_score,
	away_team=excluded.away_team,
	away_score=excluded.away_score,
	state_hash=excluded.state_hash,
	captured_at=excluded.captured_at,
	game_json=excluded.game_json;
`

func execGameUpsert(ctx context.Context, stmt *sql.Stmt, snap models.GameSnapshot) error {
	game := snap.Game
	gameJSON, _ := json.Marshal(game)
	stateHash := hashutil.GameState(string(game.Status), game.Period, game.Clock, game.Home.Score, game.Away.Score)

	_, err := stmt.ExecContext(
		ctx,
		snap.Source,
		game.ID,
		game.Date,
		dayOf(game.Date),
		game.Season,
		string(game.Status),
		game.Period,
		game.Clock,
		game.Home.Team.Name,
		game.Home.Score,
		game.Away.Team.Name,
		game.Away.Score,
		stateHash,
		snap.CapturedAt.UTC().Format(time.RFC3339Nano),
		string(gameJSON),
	)
	return err
}

// dayOf extracts the YYYY-MM-DD prefix from an ISO timestamp.
func dayOf(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}

// UpsertOdds writes the latest best-price quotes for each game.
func (s *Store) UpsertOdds(ctx context.Context, odds []models.GameOdds) error {
	if len(odds) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, oddsUpsertSQL)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, o := range odds {
		for _, q := range o.Best {
			point := ""
			if q.Point != nil {
				point = fmt.Sprintf("%g", *q.Point)
			}
			if _, err := stmt.ExecContext(
				ctx,
				o.GameID,
				q.Market,
				q.Label,
				point,
				q.Bookmaker,
				q.Price,
				o.Home,
				o.Away,
				now,
			); err != nil {
				tx.Rollback()
				return err
			}
		}
	}
	return tx.Commit()
}

const oddsUpsertSQL = `
INSERT INTO odds_quotes (
	game_id, market, label, point, bookmaker, price, home_team, away_team, updated_at
) VALUES (?,?,?,?,?,?,?,?,?)
ON CONFLICT(game_id, market, label, point) DO UPDATE SET
	bookmaker=excluded.bookmaker,
	price=excluded.price,
	home_team=excluded.home_team,
	away_team=excluded.away_team,
	updated_at=excluded.updated_at;
`

// GamesOn returns the stored games for one source on one YYYY-MM-DD day,
// ordered by tip time. Used as a read-through when the provider is down.
func (s *Store) GamesOn(ctx context.Context, source, day string) ([]models.Game, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_json FROM games WHERE source = ? AND day = ? ORDER BY game_date;`,
		source, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var game models.Game
		if err := json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
