package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration, loaded once at startup.
type Config struct {
	Port          string
	MySQLDSN      string // when empty, fall back to the local sqlite file
	SQLitePath    string
	JWTSecret     string
	AdminUsername string
	AdminPassword string

	GroqAPIKey string
	GroqModel  string

	// Scraping
	ScrapeTimeout  time.Duration
	MinOffers      int     // below this, the curated fallback set is merged in
	LidlMarkup     float64 // synthetic old price multiplier when none is shown
	KauflandMarkup float64

	// Recipe cache
	CacheWindow    time.Duration
	StalenessCheck time.Duration
	RegenTimeout   time.Duration

	// Wall-clock scrape times, cron spec format
	ScrapeSchedule []string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8081"),
		MySQLDSN:      getEnv("MYSQL_DSN", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/offers.db"),
		JWTSecret:     getEnv("JWT_SECRET", "default-secret"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		GroqAPIKey: getEnv("GROQ_API_KEY", ""),
		GroqModel:  getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),

		ScrapeTimeout:  getEnvDuration("SCRAPE_TIMEOUT", 30*time.Second),
		MinOffers:      getEnvInt("MIN_OFFERS", 10),
		LidlMarkup:     getEnvFloat("LIDL_MARKUP", 1.25),
		KauflandMarkup: getEnvFloat("KAUFLAND_MARKUP", 1.22),

		CacheWindow:    getEnvDuration("CACHE_WINDOW", 24*time.Hour),
		StalenessCheck: getEnvDuration("STALENESS_CHECK", 15*time.Minute),
		RegenTimeout:   getEnvDuration("REGEN_TIMEOUT", 2*time.Minute),

		ScrapeSchedule: []string{"0 6 * * *", "0 12 * * *", "0 18 * * *"},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
