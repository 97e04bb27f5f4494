package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/mcirin3/sports-info/internal/cache"
	"github.com/mcirin3/sports-info/internal/collectors"
	"github.com/mcirin3/sports-info/internal/config"
	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/kafka"
	"github.com/mcirin3/sports-info/internal/logging"
)

func main() {
	logging.InitFromEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	brokers := kafka.Brokers()
	topic := kafka.TopicFromEnv("SCORES_KAFKA_TOPIC", kafka.DefaultScoresTopic)
	interval := time.Duration(envInt("SCORES_POLL_SECONDS", 30)) * time.Second

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		log.Fatalf("[scores-collector] wait for broker: %v", err)
	}
	cancel()
	if err := kafka.EnsureTopic(ctx, brokers, topic); err != nil {
		log.Fatalf("[scores-collector] ensure topic: %v", err)
	}

	writer := kafka.NewWriter(brokers, topic)
	defer writer.Close()

	var scoreCache cache.ScoreboardCache
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisScoreboardCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, 0, "")
		if err != nil {
			log.Fatalf("[scores-collector] scoreboard cache: %v", err)
		}
		defer c.Close()
		scoreCache = c
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warnf("[scores-collector] invalid timezone %q, using UTC", cfg.Timezone)
		loc = time.UTC
	}

	client := espn.NewClient(espn.Config{
		SiteBaseURL: cfg.ESPNSiteBaseURL,
		WebBaseURL:  cfg.ESPNWebBaseURL,
	})

	sources := []*collectors.ScoreboardSource{
		collectors.NewScoreboardSource("espn-nba", client, espn.NBA, loc, scoreCache, writer),
		collectors.NewScoreboardSource("espn-nfl", client, espn.NFL, loc, scoreCache, writer),
	}

	logging.Infof("[scores-collector] publishing to %s every %s", topic, interval)
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src *collectors.ScoreboardSource) {
			defer wg.Done()
			collectors.RunLoop(ctx, src.Name(), interval, src.Collect)
		}(src)
	}
	wg.Wait()
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
