package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/metrics"
	"github.com/mcirin3/sports-info/internal/models"
	"github.com/mcirin3/sports-info/internal/season"
)

type leagueRef struct {
	league espn.League
	source string
}

var leaguesByName = map[string]leagueRef{
	"nba": {league: espn.NBA, source: "espn-nba"},
	"nfl": {league: espn.NFL, source: "espn-nfl"},
}

// handleScores serves the slate for one league and date. Reads go through the
// cache; a provider outage degrades to the last stored state.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("league")
	if name == "" {
		name = "nba"
	}
	ref, ok := leaguesByName[name]
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown league: "+name)
		return
	}

	loc := s.loc
	if tz := r.URL.Query().Get("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid tz: "+tz)
			return
		}
		loc = parsed
	}

	day := time.Now().In(loc).Format("2006-01-02")
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		day = parsed.Format("2006-01-02")
	}
	liveOnly := r.URL.Query().Get("live") == "1"

	ctx := r.Context()
	if s.scoreCache != nil {
		games, hit, err := s.scoreCache.Get(ctx, ref.league.Path, day)
		if err != nil {
			logging.Warnf("[api] scoreboard cache get: %v", err)
		}
		if hit {
			metrics.CacheHits.WithLabelValues("scoreboard", "hit").Inc()
			writeScores(w, day, filterLive(games, liveOnly))
			return
		}
		metrics.CacheHits.WithLabelValues("scoreboard", "miss").Inc()
	}

	espnDate := day[:4] + day[5:7] + day[8:10]
	resp, err := s.espn.Scoreboard(ctx, ref.league, espnDate, 0)
	metrics.ObserveUpstream("espn", err)
	if err != nil {
		// Serve the last stored slate before admitting defeat.
		if s.store != nil {
			stored, serr := s.store.GamesOn(ctx, ref.source, day)
			if serr == nil && len(stored) > 0 {
				logging.Warnf("[api] scoreboard upstream failed, serving stored slate: %v", err)
				writeScores(w, day, filterLive(stored, liveOnly))
				return
			}
		}
		writeError(w, http.StatusBadGateway, "scoreboard unavailable")
		return
	}

	games := espn.MapEvents(espn.CollectEvents(resp))
	if s.scoreCache != nil {
		if err := s.scoreCache.Set(ctx, ref.league.Path, day, games); err != nil {
			logging.Warnf("[api] scoreboard cache set: %v", err)
		}
	}
	writeScores(w, day, filterLive(games, liveOnly))
}

func writeScores(w http.ResponseWriter, day string, games []models.Game) {
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  day,
		"games": games,
	})
}

// filterLive keeps in-progress games; when nothing is live it falls back to
// the full slate so the caller always has something to show.
func filterLive(games []models.Game, liveOnly bool) []models.Game {
	if !liveOnly {
		return games
	}
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.Status.Live() {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return games
	}
	return out
}

// handleNFLScores serves a week-keyed football slate with season aliases and
// clamped week numbers.
func (s *Server) handleNFLScores(w http.ResponseWriter, r *http.Request) {
	const maxWeek = 18

	now := time.Now().UTC()
	current := season.Label(now, season.Football)

	seasonLabel := current
	switch raw := r.URL.Query().Get("season"); raw {
	case "", "current":
	case "last":
		seasonLabel = current - 1
	default:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid season")
			return
		}
		seasonLabel = parsed
	}

	week := season.CurrentWeek(now)
	if week < 1 {
		week = 1
	}
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid week")
			return
		}
		week = season.ClampWeek(parsed, 1, maxWeek)
	}
	if week > maxWeek {
		week = maxWeek
	}

	seasonType := queryInt(r, "seasontype", 2)

	events, note, err := s.espn.WeekSlate(r.Context(), espn.NFL, seasonLabel, seasonType, week, 0)
	metrics.ObserveUpstream("espn", err)
	if err != nil {
		writeError(w, http.StatusBadGateway, "week scoreboard unavailable")
		return
	}

	payload := map[string]any{
		"season": seasonLabel,
		"week":   week,
		"games":  espn.MapEvents(events),
	}
	if note != "" {
		payload["note"] = note
	}
	writeJSON(w, http.StatusOK, payload)
}

func queryInt(r *http.Request, key string, def int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return def
}
