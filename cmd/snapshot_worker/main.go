package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/mcirin3/sports-info/internal/config"
	"github.com/mcirin3/sports-info/internal/kafka"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/storage/sqlite"
	"github.com/mcirin3/sports-info/internal/workers"
)

func main() {
	logging.InitFromEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	brokers := kafka.Brokers()
	topic := kafka.TopicFromEnv("SCORES_KAFKA_TOPIC", kafka.DefaultScoresTopic)
	group := envString("SNAPSHOT_WORKER_GROUP", "snapshot-worker")
	workerCount := envInt("SNAPSHOT_WORKER_CONCURRENCY", 1)

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		log.Fatalf("[snapshot-worker] wait for broker: %v", err)
	}
	cancel()

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("[snapshot-worker] open sqlite: %v", err)
	}
	defer store.Close()
	if err := store.CreateTables(ctx); err != nil {
		log.Fatalf("[snapshot-worker] create tables: %v", err)
	}

	processor := workers.NewProcessor(store)

	logging.Infof("[snapshot-worker] consuming %s with group %s (%d workers)", topic, group, workerCount)
	workers.Run(ctx, brokers, topic, group, workerCount, processor.Handle)
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
