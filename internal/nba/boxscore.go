package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://cdn.nba.com/static/json/liveData"

// Config provides optional overrides.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client reads the NBA CDN live-data feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a configured NBA CDN client.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BoxScore is the normalized game detail with per-player stat lines.
type BoxScore struct {
	GameID     string  `json:"gameId"`
	GameStatus string  `json:"gameStatus"`
	Period     int     `json:"period"`
	GameClock  string  `json:"gameClock"`
	Home       BoxTeam `json:"home"`
	Away       BoxTeam `json:"away"`
}

type BoxTeam struct {
	TeamID  int         `json:"teamId"`
	Name    string      `json:"name"`
	Code    string      `json:"code"`
	Score   int         `json:"score"`
	Players []BoxPlayer `json:"players"`
}

type BoxPlayer struct {
	PersonID int    `json:"personId"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Starter  bool   `json:"starter"`
	Minutes  string `json:"minutes,omitempty"`
	Points   int    `json:"pts"`
	Rebounds int    `json:"reb"`
	Assists  int    `json:"ast"`
	Steals   int    `json:"stl"`
	Blocks   int    `json:"blk"`
	FGM      int    `json:"fgm"`
	FGA      int    `json:"fga"`
	TPM      int    `json:"tpm"`
	TPA      int    `json:"tpa"`
	FTM      int    `json:"ftm"`
	FTA      int    `json:"fta"`
}

// Boxscore fetches and normalizes the live boxscore for one game id.
func (c *Client) Boxscore(ctx context.Context, gameID string) (*BoxScore, error) {
	u := fmt.Sprintf("%s/boxscore/boxscore_%s.json", c.baseURL, gameID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("nba boxscore %d: %s", resp.StatusCode, string(body))
	}

	var payload boxscoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode boxscore: %w", err)
	}
	if payload.Game == nil {
		return nil, fmt.Errorf("nba boxscore: no game data for %s", gameID)
	}

	game := payload.Game
	return &BoxScore{
		GameID:     game.GameID,
		GameStatus: game.GameStatusText,
		Period:     game.Period,
		GameClock:  game.GameClock,
		Home:       mapTeam(game.HomeTeam),
		Away:       mapTeam(game.AwayTeam),
	}, nil
}

func mapTeam(t *rawTeam) BoxTeam {
	if t == nil {
		return BoxTeam{}
	}
	team := BoxTeam{
		TeamID: t.TeamID,
		Name:   t.TeamName,
		Code:   t.TeamTricode,
		Score:  t.Score,
	}
	for _, p := range t.Players {
		player := BoxPlayer{
			PersonID: p.PersonID,
			Name:     p.Name,
			Position: p.Position,
			Starter:  p.Starter == "1" || strings.EqualFold(p.Starter, "true"),
		}
		if p.Statistics != nil {
			s := p.Statistics
			player.Minutes = s.Minutes
			player.Points = s.Points
			player.Rebounds = s.ReboundsTotal
			player.Assists = s.Assists
			player.Steals = s.Steals
			player.Blocks = s.Blocks
			player.FGM = s.FieldGoalsMade
			player.FGA = s.FieldGoalsAttempted
			player.TPM = s.ThreePointersMade
			player.TPA = s.ThreePointersAttempted
			player.FTM = s.FreeThrowsMade
			player.FTA = s.FreeThrowsAttempted
		}
		team.Players = append(team.Players, player)
	}
	return team
}

type boxscoreResponse struct {
	Game *rawGame `json:"game"`
}

type rawGame struct {
	GameID         string   `json:"gameId"`
	GameStatusText string   `json:"gameStatusText"`
	Period         int      `json:"period"`
	GameClock      string   `json:"gameClock"`
	HomeTeam       *rawTeam `json:"homeTeam"`
	AwayTeam       *rawTeam `json:"awayTeam"`
}

type rawTeam struct {
	TeamID      int         `json:"teamId"`
	TeamName    string      `json:"teamName"`
	TeamTricode string      `json:"teamTricode"`
	Score       int         `json:"score"`
	Players     []rawPlayer `json:"players"`
}

type rawPlayer struct {
	PersonID   int       `json:"personId"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Starter    string    `json:"starter"`
	Statistics *rawStats `json:"statistics"`
}

type rawStats struct {
	Minutes                string `json:"minutes"`
	Points                 int    `json:"points"`
	ReboundsTotal          int    `json:"reboundsTotal"`
	Assists                int    `json:"assists"`
	Steals                 int    `json:"steals"`
	Blocks                 int    `json:"blocks"`
	FieldGoalsMade         int    `json:"fieldGoalsMade"`
	FieldGoalsAttempted    int    `json:"fieldGoalsAttempted"`
	ThreePointersMade      int    `json:"threePointersMade"`
	ThreePointersAttempted int    `json:"threePointersAttempted"`
	FreeThrowsMade         int    `json:"freeThrowsMade"`
	FreeThrowsAttempted    int    `json:"freeThrowsAttempted"`
}
