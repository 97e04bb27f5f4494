package apisports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// NBA league id on API-Sports basketball.
const LeagueNBA = 12

// Config provides required credentials and optional overrides.
type Config struct {
	Key     string
	Host    string
	Timeout time.Duration
	// Requests per second against the upstream quota; the free tier is tight.
	RateLimit float64
	Burst     int
}

// Client talks to an API-Sports (or RapidAPI-proxied) host.
type Client struct {
	baseURL    string
	host       string
	key        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a configured client. The host decides the auth header:
// RapidAPI proxies want x-rapidapi-host/key, direct hosts want
// x-apisports-key.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("apisports: key is required")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("apisports: host is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 2
	}
	return &Client{
		baseURL: "https://" + strings.TrimSuffix(cfg.Host, "/"),
		host:    cfg.Host,
		key:     cfg.Key,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// APIError is a transport failure carrying the upstream status and body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api-sports %d: %s", e.StatusCode, e.Body)
}

type envelope struct {
	Response json.RawMessage `json:"response"`
	Results  int             `json:"results"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if strings.Contains(c.host, "rapidapi") {
		req.Header.Set("x-rapidapi-host", c.host)
		req.Header.Set("x-rapidapi-key", c.key)
	} else {
		req.Header.Set("x-apisports-key", c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if len(env.Response) == 0 {
		return nil
	}
	return json.Unmarshal(env.Response, dst)
}

// Odds fetches one page of bookmaker quotes for a league season.
func (c *Client) Odds(ctx context.Context, league, seasonLabel, page int) ([]OddsGame, error) {
	params := url.Values{}
	params.Set("league", strconv.Itoa(league))
	params.Set("season", strconv.Itoa(seasonLabel))
	params.Set("page", strconv.Itoa(page))
	var out []OddsGame
	if err := c.get(ctx, "/odds", params, &out); err != nil {
		return nil, fmt.Errorf("odds: %w", err)
	}
	return out, nil
}

// TeamGames fetches a team's games for one season.
func (c *Client) TeamGames(ctx context.Context, league, seasonLabel, teamID int) ([]Game, error) {
	params := url.Values{}
	params.Set("league", strconv.Itoa(league))
	params.Set("season", strconv.Itoa(seasonLabel))
	params.Set("team", strconv.Itoa(teamID))
	var out []Game
	if err := c.get(ctx, "/games", params, &out); err != nil {
		return nil, fmt.Errorf("team games: %w", err)
	}
	return out, nil
}

// HeadToHead fetches the meeting history between two teams.
func (c *Client) HeadToHead(ctx context.Context, league, teamA, teamB int) ([]Game, error) {
	params := url.Values{}
	params.Set("league", strconv.Itoa(league))
	params.Set("h2h", fmt.Sprintf("%d-%d", teamA, teamB))
	var out []Game
	if err := c.get(ctx, "/games/headtohead", params, &out); err != nil {
		return nil, fmt.Errorf("head to head: %w", err)
	}
	return out, nil
}

// OddsGame is one game's quotes across bookmakers.
type OddsGame struct {
	Game struct {
		ID int `json:"id"`
	} `json:"game"`
	Teams struct {
		Home struct {
			Name string `json:"name"`
		} `json:"home"`
		Away struct {
			Name string `json:"name"`
		} `json:"away"`
	} `json:"teams"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	Name string `json:"name"`
	Bets []Bet  `json:"bets"`
}

type Bet struct {
	Name   string     `json:"name"`
	Values []BetValue `json:"values"`
}

type BetValue struct {
	Value    string `json:"value"`
	Odd      string `json:"odd"`
	Handicap string `json:"handicap"`
}

// Game is the minimal game shape used by head-to-head and averages.
type Game struct {
	ID    int `json:"id"`
	Teams struct {
		Home TeamRef `json:"home"`
		Away TeamRef `json:"away"`
	} `json:"teams"`
	Scores struct {
		Home ScoreTotal `json:"home"`
		Away ScoreTotal `json:"away"`
	} `json:"scores"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ScoreTotal struct {
	Total *int `json:"total"`
}

// Points returns the total score, defaulting to 0 when the feed has none.
func (s ScoreTotal) Points() int {
	if s.Total == nil {
		return 0
	}
	return *s.Total
}
