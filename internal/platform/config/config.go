package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Addr                string
	DatabaseURL         string
	Environment         string
	LogLevel            string
	RateFeedURL         string
	RateFeedTimeout     time.Duration
	DefaultExchangeRate decimal.Decimal
	RatePlausibleMin    decimal.Decimal
	BackfillBatchSize   int
	RunMigrations       bool
	MigrationsDir       string
}

func Load() Config {
	return Config{
		Addr:                getEnv("APP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		Environment:         getEnv("APP_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RateFeedURL:         getEnv("RATE_FEED_URL", ""),
		RateFeedTimeout:     getEnvDuration("RATE_FEED_TIMEOUT", 30*time.Second),
		DefaultExchangeRate: getEnvDecimal("DEFAULT_EXCHANGE_RATE", decimal.NewFromInt(1000)),
		RatePlausibleMin:    getEnvDecimal("RATE_PLAUSIBLE_MIN", decimal.NewFromInt(5)),
		BackfillBatchSize:   getEnvInt("BACKFILL_BATCH_SIZE", 400),
		RunMigrations:       getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.RateFeedURL) == "" {
		return fmt.Errorf("RATE_FEED_URL is required")
	}
	if !c.DefaultExchangeRate.IsPositive() {
		return fmt.Errorf("DEFAULT_EXCHANGE_RATE must be positive")
	}
	if c.RatePlausibleMin.IsNegative() {
		return fmt.Errorf("RATE_PLAUSIBLE_MIN must not be negative")
	}
	if c.BackfillBatchSize <= 0 {
		return fmt.Errorf("BACKFILL_BATCH_SIZE must be positive")
	}
	return nil
}
