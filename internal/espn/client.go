package espn

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

	"github.com/mcirin3/sports-info/internal/season"
)

const (
	defaultSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultWebBaseURL  = "https://site.web.api.espn.com/apis/v2/sports"
)

// League identifies an ESPN sport path together with its season label rules.
type League struct {
	Path  string
	Rules season.Rules
}

var (
	NBA = League{Path: "basketball/nba", Rules: season.Basketball}
	NFL = League{Path: "football/nfl", Rules: season.Football}
)

// Config provides optional overrides.
type Config struct {
	SiteBaseURL string
	WebBaseURL  string
	Timeout     time.Duration
}

// Client talks to the undocumented ESPN site APIs.
type Client struct {
	siteBaseURL string
	webBaseURL  string
	httpClient  *http.Client
}

// NewClient builds a configured ESPN client.
func NewClient(cfg Config) *Client {
	site := cfg.SiteBaseURL
	if site == "" {
		site = defaultSiteBaseURL
	}
	web := cfg.WebBaseURL
	if web == "" {
		web = defaultWebBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		siteBaseURL: strings.TrimRight(site, "/"),
		webBaseURL:  strings.TrimRight(web, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is a transport failure carrying the upstream status and body.
// It is the retry trigger for the season-fallback strategy; a single request
// is never retried in place.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("espn %d: %s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// Scoreboard fetches the slate for one date (espnDate is YYYYMMDD; empty
// means today in ESPN's default timezone).
func (c *Client) Scoreboard(ctx context.Context, league League, espnDate string, limit int) (*ScoreboardResponse, error) {
	q := url.Values{}
	if espnDate != "" {
		q.Set("dates", espnDate)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := fmt.Sprintf("%s/%s/scoreboard", c.siteBaseURL, league.Path)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	var out ScoreboardResponse
	if err := c.do(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("scoreboard %s: %w", league.Path, err)
	}
	return &out, nil
}

// ScoreboardWeek fetches a week-keyed slate (football-style schedules).
func (c *Client) ScoreboardWeek(ctx context.Context, league League, seasonLabel, seasonType, week, limit int) (*ScoreboardResponse, error) {
	q := url.Values{}
	q.Set("week", strconv.Itoa(week))
	q.Set("year", strconv.Itoa(seasonLabel))
	q.Set("seasontype", strconv.Itoa(seasonType))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := fmt.Sprintf("%s/%s/scoreboard?%s", c.siteBaseURL, league.Path, q.Encode())
	var out ScoreboardResponse
	if err := c.do(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) scoreboardByDate(ctx context.Context, league League, espnDate string, seasonLabel, seasonType, limit int) (*ScoreboardResponse, error) {
	q := url.Values{}
	q.Set("dates", espnDate)
	q.Set("year", strconv.Itoa(seasonLabel))
	q.Set("seasontype", strconv.Itoa(seasonType))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := fmt.Sprintf("%s/%s/scoreboard?%s", c.siteBaseURL, league.Path, q.Encode())
	var out ScoreboardResponse
	if err := c.do(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamSchedule fetches one team's schedule for a single season label.
func (c *Client) TeamSchedule(ctx context.Context, league League, teamID, seasonLabel, seasonType int) (*ScheduleResponse, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(seasonLabel))
	q.Set("seasontype", strconv.Itoa(seasonType))
	u := fmt.Sprintf("%s/%s/teams/%d/schedule?%s", c.siteBaseURL, league.Path, teamID, q.Encode())
	var out ScheduleResponse
	if err := c.do(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Standings fetches the verbose standings tree from the v2 web API.
func (c *Client) Standings(ctx context.Context, league League, seasonLabel, seasonType int) (*StandingsResponse, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(seasonLabel))
	q.Set("seasontype", strconv.Itoa(seasonType))
	q.Set("type", "0")
	q.Set("level", "3")
	u := fmt.Sprintf("%s/%s/standings?%s", c.webBaseURL, league.Path, q.Encode())
	var out StandingsResponse
	if err := c.do(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("standings %s: %w", league.Path, err)
	}
	return &out, nil
}
