package models

import (
	"time"

	"github.com/mcirin3/sports-info/internal/status"
)

// Team carries provider identity plus display fields. Teams are rebuilt per
// response; there is no persistent identity across requests.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
	Logo string `json:"logo,omitempty"`
}

// GameSide pairs a team with its score.
type GameSide struct {
	Team  Team `json:"team"`
	Score int  `json:"score"`
}

// Game is the canonical event exposed to presentation collaborators.
type Game struct {
	ID      int           `json:"id"`
	Date    string        `json:"date"`
	Season  int           `json:"season"`
	Status  status.Status `json:"status"`
	Period  int           `json:"period,omitempty"`
	Clock   string        `json:"clock,omitempty"`
	Home    GameSide      `json:"home"`
	Away    GameSide      `json:"away"`
	TV      []string      `json:"tv,omitempty"`
	GameURL string        `json:"gameUrl,omitempty"`
}

// FormGame is one completed game inside a recent-form sample.
type FormGame struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	HomeAway string `json:"homeAway"`
	Opponent Team   `json:"opponent"`
	PF       int    `json:"pf"`
	PA       int    `json:"pa"`
	Won      bool   `json:"won"`
}

// TeamFormSummary reduces a team's last N completed games.
type TeamFormSummary struct {
	TeamID      int        `json:"teamId"`
	Season      int        `json:"season"`
	SeasonType  int        `json:"seasontype"`
	Sample      int        `json:"sample"`
	PFAvg       float64    `json:"pfAvg"`
	PAAvg       float64    `json:"paAvg"`
	RecordLastN string     `json:"recordLastN"`
	Games       []FormGame `json:"games,omitempty"`
}

// Markets every bookmaker bet type is classified into.
const (
	MarketH2H     = "h2h"
	MarketSpreads = "spreads"
	MarketTotals  = "totals"
)

// OddsQuote is one bookmaker price in American-odds convention.
type OddsQuote struct {
	Bookmaker string   `json:"bookmaker"`
	Market    string   `json:"market"`
	Label     string   `json:"label"`
	Price     int      `json:"price"`
	Point     *float64 `json:"point,omitempty"`
}

// GameOdds holds the best-available quotes for one game.
type GameOdds struct {
	GameID int         `json:"gameId"`
	Home   string      `json:"home"`
	Away   string      `json:"away"`
	Best   []OddsQuote `json:"best"`
}

// WinProbabilityEstimate sums to 1.0; both sides clamp to [0.02, 0.98].
type WinProbabilityEstimate struct {
	Home float64 `json:"homeWinProb"`
	Away float64 `json:"awayWinProb"`
}

// StandingRow is the minimal standings entry keyed by team id.
type StandingRow struct {
	TeamID   int `json:"teamId"`
	ConfRank int `json:"confRank,omitempty"`
	Wins     int `json:"wins"`
	Losses   int `json:"losses"`
}

// TeamAverages summarizes a team's full-season scoring.
type TeamAverages struct {
	TeamID    int     `json:"teamId"`
	PPG       float64 `json:"ppg"`
	OPPG      float64 `json:"oppg"`
	PaceProxy float64 `json:"paceProxy"`
}

// GameSnapshot is the envelope published by collectors and consumed by the
// snapshot workers.
type GameSnapshot struct {
	Version    int       `json:"version"`
	Source     string    `json:"source"`
	CapturedAt time.Time `json:"captured_at"`
	Game       Game      `json:"game"`
}

const snapshotVersion = 1

// NewSnapshot stamps a canonical game with its source and capture time.
func NewSnapshot(source string, game Game, captured time.Time) GameSnapshot {
	return GameSnapshot{
		Version:    snapshotVersion,
		Source:     source,
		CapturedAt: captured.UTC(),
		Game:       game,
	}
}
