package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/form"
	"github.com/mcirin3/sports-info/internal/metrics"
	"github.com/mcirin3/sports-info/internal/season"
)

const (
	defaultFormLimit = 5
	maxFormLimit     = 20
)

// handleStandings serves the flattened standings table for one league season.
func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("league")
	if name == "" {
		name = "nba"
	}
	ref, ok := leaguesByName[name]
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown league: "+name)
		return
	}

	seasonLabel := queryInt(r, "season", season.Label(time.Now(), ref.league.Rules))
	seasonType := queryInt(r, "seasontype", 2)

	resp, err := s.espn.Standings(r.Context(), ref.league, seasonLabel, seasonType)
	metrics.ObserveUpstream("espn", err)
	if err != nil {
		writeError(w, http.StatusBadGateway, "standings unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"league":    name,
		"season":    seasonLabel,
		"standings": espn.FlattenStandings(resp),
	})
}

// handleTeamRecent serves a team's last-N completed games for one league.
// A stale requested season degrades to the nearest published one.
func (s *Server) handleTeamRecent(league espn.League) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || teamID <= 0 {
			writeError(w, http.StatusBadRequest, "invalid team id")
			return
		}

		requested := queryInt(r, "season", 0)
		seasonType := queryInt(r, "seasontype", 2)
		limit := queryInt(r, "limit", defaultFormLimit)
		if limit < 1 {
			limit = defaultFormLimit
		}
		if limit > maxFormLimit {
			limit = maxFormLimit
		}

		events, effectiveSeason, err := s.espn.FetchSchedule(r.Context(), league, teamID, requested, seasonType)
		metrics.ObserveUpstream("espn", err)
		if err != nil {
			writeError(w, http.StatusBadGateway, "schedule unavailable")
			return
		}

		summary := form.Summarize(events, teamID, limit)
		summary.Season = effectiveSeason
		summary.SeasonType = seasonType
		writeJSON(w, http.StatusOK, summary)
	}
}
