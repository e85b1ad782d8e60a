package config

import (
	"os"
	"strconv"
	"time"
)

// Config dormportal (HTTP API) configuration, loaded from the environment.
type Config struct {
	HTTP struct {
		Addr string
	}
	// DatabaseURL is the single Postgres connection string. Empty means
	// run on in-memory repositories (local dev, tests).
	DatabaseURL string
	Redis       struct {
		Addr     string
		Password string
		DB       int
	}
	RateLimit struct {
		Requests int
		Window   time.Duration
	}
	SessionTTL time.Duration
	Log        struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.RateLimit.Requests = parseInt(getEnv("RATE_LIMIT_REQUESTS", "100"), 100)
	cfg.RateLimit.Window = time.Duration(parseInt(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"), 60)) * time.Second

	cfg.SessionTTL = time.Duration(parseInt(getEnv("SESSION_TTL_MINUTES", "720"), 720)) * time.Minute

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
