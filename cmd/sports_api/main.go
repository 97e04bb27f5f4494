package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mcirin3/sports-info/internal/api"
	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/cache"
	"github.com/mcirin3/sports-info/internal/config"
	"github.com/mcirin3/sports-info/internal/insight"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/storage/sqlite"
)

func main() {
	logging.InitFromEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := api.Options{}

	if cfg.APISportsKey != "" && cfg.APISportsHost != "" {
		client, err := apisports.NewClient(apisports.Config{
			Key:  cfg.APISportsKey,
			Host: cfg.APISportsHost,
		})
		if err != nil {
			log.Fatalf("[sports-api] apisports client: %v", err)
		}
		opts.Sports = client
	} else {
		logging.Warnf("[sports-api] API-Sports not configured; odds and h2h routes disabled")
	}

	if cfg.RedisAddr != "" {
		scoreCache, err := cache.NewRedisScoreboardCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, 0, "")
		if err != nil {
			log.Fatalf("[sports-api] scoreboard cache: %v", err)
		}
		defer scoreCache.Close()
		opts.ScoreCache = scoreCache

		oddsCache, err := cache.NewRedisOddsCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, 0, "")
		if err != nil {
			log.Fatalf("[sports-api] odds cache: %v", err)
		}
		defer oddsCache.Close()
		opts.OddsCache = oddsCache
	}

	if cfg.SQLitePath != "" {
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("[sports-api] open sqlite: %v", err)
		}
		defer store.Close()
		opts.Store = store
	}

	if cfg.InsightAPIKey != "" {
		client, err := insight.New(insight.Config{
			APIKey:  cfg.InsightAPIKey,
			BaseURL: cfg.InsightBaseURL,
			Model:   cfg.InsightModel,
		})
		if err != nil {
			log.Fatalf("[sports-api] insight client: %v", err)
		}
		opts.Insight = client
	}

	server := api.NewServer(cfg, opts)
	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Errorf("[sports-api] shutdown: %v", err)
		}
	}()

	logging.Infof("[sports-api] listening on %s", cfg.ListenAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("[sports-api] serve: %v", err)
	}
}
