package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/cache"
	"github.com/mcirin3/sports-info/internal/config"
	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/insight"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/metrics"
	"github.com/mcirin3/sports-info/internal/nba"
	"github.com/mcirin3/sports-info/internal/storage/sqlite"
)

// Server wires the normalized data sources behind an HTTP API. Optional
// collaborators (cache, store, odds provider, insight) may be nil; handlers
// degrade rather than fail when one is missing.
type Server struct {
	cfg        *config.Config
	espn       *espn.Client
	sports     *apisports.Client
	nba        *nba.Client
	scoreCache cache.ScoreboardCache
	oddsCache  cache.OddsCache
	store      *sqlite.Store
	insight    *insight.Client
	loc        *time.Location
}

// Options carries the optional collaborators.
type Options struct {
	Sports     *apisports.Client
	ScoreCache cache.ScoreboardCache
	OddsCache  cache.OddsCache
	Store      *sqlite.Store
	Insight    *insight.Client
}

// NewServer builds the server from config plus optional collaborators.
func NewServer(cfg *config.Config, opts Options) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warnf("[api] invalid timezone %q, using UTC", cfg.Timezone)
		loc = time.UTC
	}
	return &Server{
		cfg: cfg,
		espn: espn.NewClient(espn.Config{
			SiteBaseURL: cfg.ESPNSiteBaseURL,
			WebBaseURL:  cfg.ESPNWebBaseURL,
		}),
		sports:     opts.Sports,
		nba:        nba.NewClient(nba.Config{BaseURL: cfg.NBACDNBaseURL}),
		scoreCache: opts.ScoreCache,
		oddsCache:  opts.OddsCache,
		store:      opts.Store,
		insight:    opts.Insight,
		loc:        loc,
	}
}

// Router lays out all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(metrics.Middleware("/api/scores")).Get("/scores", s.handleScores)
		r.With(metrics.Middleware("/api/espn/standings")).Get("/espn/standings", s.handleStandings)
		r.With(metrics.Middleware("/api/espn/team/recent")).Get("/espn/team/{id}/recent", s.handleTeamRecent(espn.NBA))
		r.With(metrics.Middleware("/api/nfl/scores")).Get("/nfl/scores", s.handleNFLScores)
		r.With(metrics.Middleware("/api/nfl/team/recent")).Get("/nfl/team/{id}/recent", s.handleTeamRecent(espn.NFL))
		r.With(metrics.Middleware("/api/odds")).Get("/odds", s.handleOdds)
		r.With(metrics.Middleware("/api/h2h")).Get("/h2h", s.handleHeadToHead)
		r.With(metrics.Middleware("/api/game/boxscore")).Get("/game/{id}/boxscore", s.handleBoxscore)
		r.With(metrics.Middleware("/api/game/intel")).Get("/game/{id}/intel", s.handleIntel)
		r.With(metrics.Middleware("/api/matchup")).Get("/matchup", s.handleMatchup)
	})

	return r
}
