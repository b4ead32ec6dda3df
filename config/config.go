package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration. Empty RedisAddr or DBConn fall
// back to the in-memory cache and repository.
type Config struct {
	Port      string
	LogLevel  string
	RedisAddr string
	CacheTTL  time.Duration
	DBConn    string
}

// NewConfig loads configuration from the environment, honoring a local .env
// file when present.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		CacheTTL:  24 * time.Hour,
		DBConn:    getEnv("DB_CONN", ""),
	}

	if ttl := getEnv("CACHE_TTL", ""); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.CacheTTL = d
		}
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
