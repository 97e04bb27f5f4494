package collectors

import (
	"context"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/cache"
	"github.com/mcirin3/sports-info/internal/espn"
	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/odds"
	"github.com/mcirin3/sports-info/internal/queue"
	"github.com/mcirin3/sports-info/internal/season"
)

// ScoreboardSource polls today's slate for one league, refreshes the cache,
// and publishes a snapshot per game.
type ScoreboardSource struct {
	name   string
	client *espn.Client
	league espn.League
	loc    *time.Location
	cache  cache.ScoreboardCache
	writer *kafkago.Writer
}

func NewScoreboardSource(name string, client *espn.Client, league espn.League, loc *time.Location, scoreCache cache.ScoreboardCache, writer *kafkago.Writer) *ScoreboardSource {
	if loc == nil {
		loc = time.UTC
	}
	return &ScoreboardSource{
		name:   name,
		client: client,
		league: league,
		loc:    loc,
		cache:  scoreCache,
		writer: writer,
	}
}

func (s *ScoreboardSource) Name() string { return s.name }

func (s *ScoreboardSource) Collect(ctx context.Context) error {
	day := time.Now().In(s.loc).Format("2006-01-02")
	espnDate := time.Now().In(s.loc).Format("20060102")

	resp, err := s.client.Scoreboard(ctx, s.league, espnDate, 0)
	if err != nil {
		return err
	}
	games := espn.MapEvents(espn.CollectEvents(resp))
	logging.Debugf("[%s] %s: %d games", s.name, day, len(games))

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.league.Path, day, games); err != nil {
			logging.Warnf("[%s] cache set failed: %v", s.name, err)
		}
	}
	if err := queue.PublishGameSnapshots(ctx, s.writer, s.name, games); err != nil {
		return fmt.Errorf("publish snapshots: %w", err)
	}
	return nil
}

// OddsSource polls the bookmaker feed page by page, normalizes to best-price
// selections, refreshes the cache, and publishes the results.
type OddsSource struct {
	name   string
	client *apisports.Client
	league int
	pages  int
	cache  cache.OddsCache
	writer *kafkago.Writer
}

func NewOddsSource(name string, client *apisports.Client, league, pages int, oddsCache cache.OddsCache, writer *kafkago.Writer) *OddsSource {
	if pages <= 0 {
		pages = 1
	}
	return &OddsSource{
		name:   name,
		client: client,
		league: league,
		pages:  pages,
		cache:  oddsCache,
		writer: writer,
	}
}

func (s *OddsSource) Name() string { return s.name }

func (s *OddsSource) Collect(ctx context.Context) error {
	// API-Sports labels basketball seasons by start year, one behind our
	// end-year convention.
	seasonLabel := season.Label(time.Now(), season.Basketball) - 1

	for page := 1; page <= s.pages; page++ {
		raw, err := s.client.Odds(ctx, s.league, seasonLabel, page)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}
		if len(raw) == 0 {
			return nil
		}
		normalized := odds.NormalizeAll(raw)
		logging.Debugf("[%s] season %d page %d: %d games", s.name, seasonLabel, page, len(normalized))

		if s.cache != nil {
			if err := s.cache.Set(ctx, s.league, seasonLabel, page, normalized); err != nil {
				logging.Warnf("[%s] cache set failed: %v", s.name, err)
			}
		}
		if err := queue.PublishGameOdds(ctx, s.writer, normalized); err != nil {
			return fmt.Errorf("publish odds: %w", err)
		}
	}
	return nil
}
