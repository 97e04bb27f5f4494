package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/form"
	"github.com/mcirin3/sports-info/internal/h2h"
	"github.com/mcirin3/sports-info/internal/insight"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/metrics"
	"github.com/mcirin3/sports-info/internal/models"
	"github.com/mcirin3/sports-info/internal/predict"
	"github.com/mcirin3/sports-info/internal/season"
)

// handleHeadToHead compares two teams on the bookmaker provider's game feed:
// per-team season averages plus the recent meeting split. The three upstream
// fetches run concurrently and one failing leg does not suppress the others.
func (s *Server) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	if s.sports == nil {
		writeError(w, http.StatusServiceUnavailable, "stats provider not configured")
		return
	}

	teamA := queryInt(r, "a", 0)
	teamB := queryInt(r, "b", 0)
	if teamA <= 0 || teamB <= 0 {
		writeError(w, http.StatusBadRequest, "a and b team ids are required")
		return
	}
	seasonLabel := queryInt(r, "season", season.Label(time.Now(), season.Basketball)-1)
	limit := queryInt(r, "limit", defaultFormLimit)

	ctx := r.Context()
	var (
		wg                      sync.WaitGroup
		gamesA, gamesB, meeting []apisports.Game
		errA, errB, errM        error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		gamesA, errA = s.sports.TeamGames(ctx, apisports.LeagueNBA, seasonLabel, teamA)
		metrics.ObserveUpstream("apisports", errA)
	}()
	go func() {
		defer wg.Done()
		gamesB, errB = s.sports.TeamGames(ctx, apisports.LeagueNBA, seasonLabel, teamB)
		metrics.ObserveUpstream("apisports", errB)
	}()
	go func() {
		defer wg.Done()
		meeting, errM = s.sports.HeadToHead(ctx, apisports.LeagueNBA, teamA, teamB)
		metrics.ObserveUpstream("apisports", errM)
	}()
	wg.Wait()

	if errA != nil && errB != nil && errM != nil {
		writeError(w, http.StatusBadGateway, "head-to-head unavailable")
		return
	}
	for _, err := range []error{errA, errB, errM} {
		if err != nil {
			logging.Warnf("[api] partial head-to-head: %v", err)
		}
	}

	report := h2h.Report{
		A:      h2h.TeamAverages(gamesA, teamA),
		B:      h2h.TeamAverages(gamesB, teamB),
		Recent: h2h.Split(meeting, teamA, limit),
	}
	writeJSON(w, http.StatusOK, map[string]any{"season": seasonLabel, "report": report})
}

// handleBoxscore serves the per-player stat lines for one NBA game.
func (s *Server) handleBoxscore(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "game id is required")
		return
	}

	box, err := s.nba.Boxscore(r.Context(), gameID)
	metrics.ObserveUpstream("nbacdn", err)
	if err != nil {
		writeError(w, http.StatusBadGateway, "boxscore unavailable")
		return
	}
	writeJSON(w, http.StatusOK, box)
}

// handleIntel serves the quick scoring-differential edge for one game. Both
// teams' recent form is fetched concurrently; a missing side falls back to a
// neutral differential.
func (s *Server) handleIntel(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	homeID := queryInt(r, "home", 0)
	awayID := queryInt(r, "away", 0)
	if homeID <= 0 || awayID <= 0 {
		writeError(w, http.StatusBadRequest, "home and away team ids are required")
		return
	}
	limit := queryInt(r, "limit", defaultFormLimit)

	homeSummary, awaySummary := s.fetchForms(r, espn.NBA, homeID, awayID, limit)

	estimate, verdict := predict.Edge(formDiff(homeSummary), formDiff(awaySummary))
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId":   gameID,
		"home":     summaryOrNil(homeSummary),
		"away":     summaryOrNil(awaySummary),
		"estimate": estimate,
		"verdict":  verdict,
	})
}

// fetchForms loads both teams' recent form in parallel, returning nil for a
// side whose schedule could not be fetched.
func (s *Server) fetchForms(r *http.Request, league espn.League, homeID, awayID, limit int) (*models.TeamFormSummary, *models.TeamFormSummary) {
	ctx := r.Context()
	requested := queryInt(r, "season", 0)
	seasonType := queryInt(r, "seasontype", 2)

	var (
		wg         sync.WaitGroup
		home, away *models.TeamFormSummary
	)
	fetch := func(teamID int, dst **models.TeamFormSummary) {
		defer wg.Done()
		events, effective, err := s.espn.FetchSchedule(ctx, league, teamID, requested, seasonType)
		metrics.ObserveUpstream("espn", err)
		if err != nil {
			logging.Warnf("[api] recent form team=%d: %v", teamID, err)
			return
		}
		summary := form.Summarize(events, teamID, limit)
		summary.Season = effective
		summary.SeasonType = seasonType
		*dst = &summary
	}
	wg.Add(2)
	go fetch(homeID, &home)
	go fetch(awayID, &away)
	wg.Wait()
	return home, away
}

func formDiff(summary *models.TeamFormSummary) float64 {
	if summary == nil {
		return 0
	}
	return summary.PFAvg - summary.PAAvg
}

func summaryOrNil(summary *models.TeamFormSummary) any {
	if summary == nil {
		return nil
	}
	return summary
}

// handleMatchup blends season record, recent form, and scoring differential
// into a win probability, optionally topped with a generated preview.
func (s *Server) handleMatchup(w http.ResponseWriter, r *http.Request) {
	homeID := queryInt(r, "home", 0)
	awayID := queryInt(r, "away", 0)
	if homeID <= 0 || awayID <= 0 {
		writeError(w, http.StatusBadRequest, "home and away team ids are required")
		return
	}

	ctx := r.Context()
	seasonLabel := queryInt(r, "season", season.Label(time.Now(), season.Basketball))

	var (
		wg        sync.WaitGroup
		standings map[int]models.StandingRow
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		resp, err := s.espn.Standings(ctx, espn.NBA, seasonLabel, 2)
		metrics.ObserveUpstream("espn", err)
		if err != nil {
			logging.Warnf("[api] matchup standings: %v", err)
			return
		}
		standings = espn.FlattenStandings(resp)
	}()

	homeSummary, awaySummary := s.fetchForms(r, espn.NBA, homeID, awayID, defaultFormLimit)
	wg.Wait()

	homeStanding := standingFor(standings, homeID)
	awayStanding := standingFor(standings, awayID)

	estimate := predict.Blend(
		seasonPct(homeStanding),
		seasonPct(awayStanding),
		recentPct(homeSummary),
		recentPct(awaySummary),
		formDiff(homeSummary),
		formDiff(awaySummary),
	)

	payload := map[string]any{
		"season":         seasonLabel,
		"home":           matchupSide(homeID, homeSummary, homeStanding),
		"away":           matchupSide(awayID, awaySummary, awayStanding),
		"winProbability": estimate,
	}

	if s.insight != nil && r.URL.Query().Get("insight") == "1" {
		homeName := r.URL.Query().Get("homeName")
		if homeName == "" {
			homeName = strconv.Itoa(homeID)
		}
		awayName := r.URL.Query().Get("awayName")
		if awayName == "" {
			awayName = strconv.Itoa(awayID)
		}
		preview, err := s.insight.Preview(ctx, insight.MatchupInput{
			HomeName:     homeName,
			AwayName:     awayName,
			Home:         derefSummary(homeSummary),
			Away:         derefSummary(awaySummary),
			HomeStanding: homeStanding,
			AwayStanding: awayStanding,
			Estimate:     estimate,
		})
		if err != nil {
			logging.Warnf("[api] matchup insight: %v", err)
		} else {
			payload["preview"] = preview
		}
	}

	writeJSON(w, http.StatusOK, payload)
}

func standingFor(table map[int]models.StandingRow, teamID int) *models.StandingRow {
	if table == nil {
		return nil
	}
	if row, ok := table[teamID]; ok {
		return &row
	}
	return nil
}

func seasonPct(row *models.StandingRow) float64 {
	if row == nil {
		return predict.Neutral
	}
	return predict.RecordPct(row.Wins, row.Losses)
}

func recentPct(summary *models.TeamFormSummary) float64 {
	if summary == nil {
		return predict.Neutral
	}
	return predict.WinPct(summary.RecordLastN, summary.Sample)
}

func matchupSide(teamID int, summary *models.TeamFormSummary, standing *models.StandingRow) map[string]any {
	side := map[string]any{"teamId": teamID}
	if summary != nil {
		side["recent"] = summary
	}
	if standing != nil {
		side["standing"] = standing
	}
	return side
}

func derefSummary(summary *models.TeamFormSummary) models.TeamFormSummary {
	if summary == nil {
		return models.TeamFormSummary{}
	}
	return *summary
}
