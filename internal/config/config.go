package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port           string
	Environment    string
	AllowedOrigins []string

	// Archive; empty disables result archiving.
	DatabaseURL string

	// Auction
	DefaultTimerSeconds int
	BidIncrementLakhs   int
	BudgetLakhs         int
	ResolveDelay        time.Duration
	SelectionTimeout    time.Duration
	RoomIdleTTL         time.Duration
	JanitorInterval     time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DefaultTimerSeconds: getEnvInt("DEFAULT_TIMER_SECONDS", 15),
		BidIncrementLakhs:   getEnvInt("BID_INCREMENT_LAKHS", 20),
		BudgetLakhs:         getEnvInt("BUDGET_LAKHS", 12000),
		ResolveDelay:        time.Duration(getEnvInt("RESOLVE_DELAY_SECONDS", 4)) * time.Second,
		SelectionTimeout:    time.Duration(getEnvInt("SELECTION_TIMEOUT_MINUTES", 10)) * time.Minute,
		RoomIdleTTL:         time.Duration(getEnvInt("ROOM_IDLE_TTL_MINUTES", 120)) * time.Minute,
		JanitorInterval:     time.Duration(getEnvInt("JANITOR_INTERVAL_MINUTES", 5)) * time.Minute,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
