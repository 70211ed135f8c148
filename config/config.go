package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env               string
	Port              string
	DBURL             string
	SigningSecret     string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	MaxFailedAttempts int
	LockDuration      time.Duration
	BcryptCost        int
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		DBURL:             mustGetEnv("DB_URL"),
		SigningSecret:     mustGetEnv("JWT_SECRET"),
		AccessTokenTTL:    time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL_SECONDS", 900)) * time.Second,
		RefreshTokenTTL:   time.Duration(getEnvAsInt("REFRESH_TOKEN_TTL_SECONDS", 604800)) * time.Second,
		MaxFailedAttempts: getEnvAsInt("MAX_FAILED_ATTEMPTS", 5),
		LockDuration:      time.Duration(getEnvAsInt("LOCK_DURATION_MINUTES", 15)) * time.Minute,
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 12),
	}

	if cfg.MaxFailedAttempts < 1 {
		log.Fatalf("MAX_FAILED_ATTEMPTS must be at least 1, got %d", cfg.MaxFailedAttempts)
	}
	if cfg.LockDuration < 0 {
		log.Fatalf("LOCK_DURATION_MINUTES must not be negative")
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)

	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)

		return defaultVal
	}

	return val
}
