package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	JWTSecret string // Required: HMAC secret for verifying access tokens
	Issuer    string // Optional: issuer claim for tokens (default: scholarhub)

	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseFile string // Optional: path to SQLite database file (default: ./qna.db)

	RedisAddr     string        // Optional: redis address; empty falls back to the in-process cache
	RedisPassword string        // Optional: redis password
	RedisDB       int           // Optional: redis database number (default: 0)
	CacheTTL      time.Duration // Optional: list cache TTL (default: 5m)

	OpenAlexURL    string // Optional: OpenAlex base URL (default: https://api.openalex.org)
	OpenAlexMailTo string // Optional: contact email for the OpenAlex polite pool

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	MessageRetention     time.Duration // Read-message retention window (default: 30 days)
}

func LoadConfig() Config {
	return Config{
		JWTSecret: os.Getenv("QNA_JWT_SECRET"),
		Issuer:    getEnvOrDefault("QNA_ISSUER", "scholarhub"),

		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		DatabaseFile: getEnvOrDefault("QNA_DATABASE_FILE", "qna.db"),

		RedisAddr:     os.Getenv("QNA_REDIS_ADDR"),
		RedisPassword: os.Getenv("QNA_REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("QNA_REDIS_DB", 0),
		CacheTTL:      getEnvDurationOrDefault("QNA_CACHE_TTL", 5*time.Minute),

		OpenAlexURL:    os.Getenv("QNA_OPENALEX_URL"),
		OpenAlexMailTo: os.Getenv("QNA_OPENALEX_MAILTO"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		MessageRetention:     getEnvDurationOrDefault("QNA_MESSAGE_RETENTION", 30*24*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
