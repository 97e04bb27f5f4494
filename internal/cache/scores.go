package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcirin3/sports-info/internal/models"
)

// ScoreboardCache stores the normalized slate per (league, date) so bursts of
// page loads do not hammer the provider. TTLs are short; this layer never
// outlives live data for long.
type ScoreboardCache interface {
	Get(ctx context.Context, league, date string) ([]models.Game, bool, error)
	Set(ctx context.Context, league, date string, games []models.Game) error
	Close() error
}

type redisScoreboardCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisScoreboardCache builds a cache keyed by league and date.
func NewRedisScoreboardCache(addr, password string, db int, ttl time.Duration, prefix string) (ScoreboardCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	if prefix == "" {
		prefix = "scoreboard"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisScoreboardCache{client: client, ttl: ttl, prefix: prefix}, nil
}

func (c *redisScoreboardCache) key(league, date string) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, league, date)
}

func (c *redisScoreboardCache) Get(ctx context.Context, league, date string) ([]models.Game, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, c.key(league, date)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var games []models.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, false, err
	}
	return games, true, nil
}

func (c *redisScoreboardCache) Set(ctx context.Context, league, date string, games []models.Game) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(games)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(league, date), payload, c.ttl).Err()
}

func (c *redisScoreboardCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
