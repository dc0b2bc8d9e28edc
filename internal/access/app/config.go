package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer           string // Required: expected issuer claim on session tokens
	SessionPublicKey string // Required: identity provider's EdDSA public key (PKIX PEM or base64 raw)
	BootstrapToken   string // Optional: if unset, the bootstrap endpoint is disabled

	DatabaseFile string // Optional: path to SQLite database file (default: ./access.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	InviteDefaultTTL time.Duration // Optional: invite lifetime when the issuer gives none (default: 30 days)
	InviteMaxTTL     time.Duration // Optional: hard cap on invite lifetime (default: 90 days)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:           getEnvOrDefault("ACCESS_ISSUER", "hearth-id"),
		SessionPublicKey: os.Getenv("ACCESS_SESSION_PUBLIC_KEY"),
		BootstrapToken:   os.Getenv("BOOTSTRAP_TOKEN"),

		DatabaseFile: getEnvOrDefault("ACCESS_DATABASE_FILE", "access.db"),
		PepperFile:   getEnvOrDefault("ACCESS_PEPPER_FILE", "pepper"),

		InviteDefaultTTL: getEnvDurationOrDefault("INVITE_DEFAULT_TTL", 30*24*time.Hour),
		InviteMaxTTL:     getEnvDurationOrDefault("INVITE_MAX_TTL", 90*24*time.Hour),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
