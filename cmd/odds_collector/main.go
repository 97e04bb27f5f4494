package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/cache"
	"github.com/mcirin3/sports-info/internal/collectors"
	"github.com/mcirin3/sports-info/internal/config"
	"github.com/mcirin3/sports-info/internal/kafka"
	"github.com/mcirin3/sports-info/internal/logging"
)

func main() {
	logging.InitFromEnv()
	cfg := config.Load()
	if err := cfg.RequireAPISports(); err != nil {
		log.Fatalf("[odds-collector] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	brokers := kafka.Brokers()
	topic := kafka.TopicFromEnv("ODDS_KAFKA_TOPIC", kafka.DefaultOddsTopic)
	interval := time.Duration(envInt("ODDS_POLL_SECONDS", 300)) * time.Second
	pages := envInt("ODDS_PAGES", 2)

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		log.Fatalf("[odds-collector] wait for broker: %v", err)
	}
	cancel()
	if err := kafka.EnsureTopic(ctx, brokers, topic); err != nil {
		log.Fatalf("[odds-collector] ensure topic: %v", err)
	}

	writer := kafka.NewWriter(brokers, topic)
	defer writer.Close()

	client, err := apisports.NewClient(apisports.Config{
		Key:  cfg.APISportsKey,
		Host: cfg.APISportsHost,
	})
	if err != nil {
		log.Fatalf("[odds-collector] apisports client: %v", err)
	}

	var oddsCache cache.OddsCache
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisOddsCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, 0, "")
		if err != nil {
			log.Fatalf("[odds-collector] odds cache: %v", err)
		}
		defer c.Close()
		oddsCache = c
	}

	source := collectors.NewOddsSource("apisports-nba", client, apisports.LeagueNBA, pages, oddsCache, writer)

	logging.Infof("[odds-collector] publishing to %s every %s (%d pages)", topic, interval, pages)
	collectors.RunLoop(ctx, source.Name(), interval, source.Collect)
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
