package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// Game API upstream
	GameAPIBaseURL string
	GameAPITimeout time.Duration

	// Catalog config directory
	CatalogDir string

	// Cache tuning
	ProfileCacheTTL time.Duration
	MarketCacheTTL  time.Duration

	// Search history database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
}

// Load loads the configuration from environment variables. A .env file is
// honored when present but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		Version:        getEnv("VERSION", "dev"),
		GameAPIBaseURL: getEnv("GAME_API_BASE_URL", "https://api.ironwoodrpg.com"),
		CatalogDir:     getEnv("CATALOG_DIR", "configs/items"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "ironwood_companion"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.GameAPITimeout, err = getDuration("GAME_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.ProfileCacheTTL, err = getDuration("PROFILE_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.MarketCacheTTL, err = getDuration("MARKET_CACHE_TTL", time.Minute)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
