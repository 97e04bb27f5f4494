package api

import (
	"net/http"
	"time"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/metrics"
	"github.com/mcirin3/sports-info/internal/odds"
	"github.com/mcirin3/sports-info/internal/season"
)

// handleOdds serves best-price selections for one league season page.
func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	if s.sports == nil {
		writeError(w, http.StatusServiceUnavailable, "odds provider not configured")
		return
	}

	// API-Sports labels basketball seasons by start year.
	seasonLabel := queryInt(r, "season", season.Label(time.Now(), season.Basketball)-1)
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	ctx := r.Context()
	if s.oddsCache != nil {
		cached, hit, err := s.oddsCache.Get(ctx, apisports.LeagueNBA, seasonLabel, page)
		if err != nil {
			logging.Warnf("[api] odds cache get: %v", err)
		}
		if hit {
			metrics.CacheHits.WithLabelValues("odds", "hit").Inc()
			writeJSON(w, http.StatusOK, map[string]any{"season": seasonLabel, "page": page, "games": cached})
			return
		}
		metrics.CacheHits.WithLabelValues("odds", "miss").Inc()
	}

	raw, err := s.sports.Odds(ctx, apisports.LeagueNBA, seasonLabel, page)
	metrics.ObserveUpstream("apisports", err)
	if err != nil {
		writeError(w, http.StatusBadGateway, "odds unavailable")
		return
	}

	normalized := odds.NormalizeAll(raw)
	if s.oddsCache != nil {
		if err := s.oddsCache.Set(ctx, apisports.LeagueNBA, seasonLabel, page, normalized); err != nil {
			logging.Warnf("[api] odds cache set: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"season": seasonLabel, "page": page, "games": normalized})
}
