package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	PORT        string
	APP_ENV     string
	CORS_ORIGIN string
	DB_URL      string

	SESSION_SECRET string
	SESSION_TTL    time.Duration
	SESSION_STORE  string // "memory" | "redis"

	REDIS_ADDR     string
	REDIS_PASSWORD string
	REDIS_DB       int

	MAIL_SERVER         string
	MAIL_PORT           int
	MAIL_USE_TLS        bool
	MAIL_USERNAME       string
	MAIL_PASSWORD       string
	MAIL_DEFAULT_SENDER string
	MAIL_TIMEOUT        time.Duration

	ADMIN_USERNAME      string
	ADMIN_PASSWORD      string
	ADMIN_PASSWORD_HASH string

	REQUIRE_DEFAULT_BIOGRAPHY bool
)

// LoadEnv reads the process configuration once. Values are not re-read afterwards.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	APP_ENV = getEnv("APP_ENV", "development")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "")
	DB_URL = getEnv("DB_URL", "sqlite:///portfolio.db")

	SESSION_SECRET = getEnv("SESSION_SECRET", "")
	SESSION_TTL = getEnvDuration("SESSION_TTL", 24*time.Hour)
	SESSION_STORE = strings.ToLower(getEnv("SESSION_STORE", "memory"))

	REDIS_ADDR = getEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")
	REDIS_DB = getEnvInt("REDIS_DB", 0)

	MAIL_SERVER = getEnv("MAIL_SERVER", "smtp.googlemail.com")
	MAIL_PORT = getEnvInt("MAIL_PORT", 587)
	MAIL_USE_TLS = getEnvBool("MAIL_USE_TLS", true)
	MAIL_USERNAME = getEnv("MAIL_USERNAME", "")
	MAIL_PASSWORD = getEnv("MAIL_PASSWORD", "")
	MAIL_DEFAULT_SENDER = getEnv("MAIL_DEFAULT_SENDER", "")
	MAIL_TIMEOUT = getEnvDuration("MAIL_TIMEOUT", 15*time.Second)

	ADMIN_USERNAME = getEnv("ADMIN_USERNAME", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
	ADMIN_PASSWORD_HASH = getEnv("ADMIN_PASSWORD_HASH", "")

	REQUIRE_DEFAULT_BIOGRAPHY = getEnvBool("REQUIRE_DEFAULT_BIOGRAPHY", false)
}

// RequireServerEnv reports the settings the HTTP server cannot start without.
// Operator commands (migrate, check, seed) only need DB_URL.
func RequireServerEnv() error {
	var missing []string
	if SESSION_SECRET == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if ADMIN_USERNAME == "" {
		missing = append(missing, "ADMIN_USERNAME")
	}
	if ADMIN_PASSWORD == "" && ADMIN_PASSWORD_HASH == "" {
		missing = append(missing, "ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	if MAIL_USERNAME == "" {
		missing = append(missing, "MAIL_USERNAME")
	}
	if SESSION_STORE != "memory" && SESSION_STORE != "redis" {
		return fmt.Errorf("SESSION_STORE must be memory or redis, got %q", SESSION_STORE)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid boolean, using default")
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return fallback
	}
	return d
}
