package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultESPNSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultESPNWebBaseURL  = "https://site.web.api.espn.com/apis/v2/sports"
	defaultNBACDNBaseURL   = "https://cdn.nba.com/static/json/liveData"
	defaultListenAddr      = ":8080"
	defaultTimezone        = "America/New_York"
)

// Config is the process-wide configuration, resolved once at startup so the
// normalization engine stays a pure function of its explicit inputs.
type Config struct {
	ListenAddr string

	ESPNSiteBaseURL string
	ESPNWebBaseURL  string
	NBACDNBaseURL   string

	APISportsKey  string
	APISportsHost string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SQLitePath string

	InsightAPIKey  string
	InsightBaseURL string
	InsightModel   string

	Timezone string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:      envString("LISTEN_ADDR", defaultListenAddr),
		ESPNSiteBaseURL: envString("ESPN_SITE_BASE_URL", defaultESPNSiteBaseURL),
		ESPNWebBaseURL:  envString("ESPN_WEB_BASE_URL", defaultESPNWebBaseURL),
		NBACDNBaseURL:   envString("NBA_CDN_BASE_URL", defaultNBACDNBaseURL),
		APISportsKey:    os.Getenv("APISPORTS_KEY"),
		APISportsHost:   os.Getenv("APISPORTS_HOST"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		SQLitePath:      os.Getenv("SQLITE_PATH"),
		InsightAPIKey:   os.Getenv("INSIGHT_API_KEY"),
		InsightBaseURL:  os.Getenv("INSIGHT_BASE_URL"),
		InsightModel:    os.Getenv("INSIGHT_MODEL"),
		Timezone:        envString("SCOREBOARD_TZ", defaultTimezone),
	}
}

// RequireAPISports fails fast for binaries that talk to API-Sports.
func (c *Config) RequireAPISports() error {
	if c.APISportsKey == "" {
		return fmt.Errorf("config: APISPORTS_KEY is required")
	}
	if c.APISportsHost == "" {
		return fmt.Errorf("config: APISPORTS_HOST is required")
	}
	return nil
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
