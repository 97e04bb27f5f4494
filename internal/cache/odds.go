package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcirin3/sports-info/internal/models"
)

// OddsCache stores best-price selections per (league, season, page) so the
// metered odds provider is polled once per interval, not once per viewer.
type OddsCache interface {
	Get(ctx context.Context, league, seasonLabel, page int) ([]models.GameOdds, bool, error)
	Set(ctx context.Context, league, seasonLabel, page int, odds []models.GameOdds) error
	Close() error
}

type redisOddsCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisOddsCache builds a cache for normalized odds pages.
func NewRedisOddsCache(addr, password string, db int, ttl time.Duration, prefix string) (OddsCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	if prefix == "" {
		prefix = "odds_best"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisOddsCache{client: client, ttl: ttl, prefix: prefix}, nil
}

func (c *redisOddsCache) key(league, seasonLabel, page int) string {
	return fmt.Sprintf("%s:%d:%d:%d", c.prefix, league, seasonLabel, page)
}

func (c *redisOddsCache) Get(ctx context.Context, league, seasonLabel, page int) ([]models.GameOdds, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, c.key(league, seasonLabel, page)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var odds []models.GameOdds
	if err := json.Unmarshal(raw, &odds); err != nil {
		return nil, false, err
	}
	return odds, true, nil
}

func (c *redisOddsCache) Set(ctx context.Context, league, seasonLabel, page int, odds []models.GameOdds) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(odds)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(league, seasonLabel, page), payload, c.ttl).Err()
}

func (c *redisOddsCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
