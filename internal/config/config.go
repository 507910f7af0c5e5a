package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// Server
	Port          string
	Host          string
	PublicBaseURL string

	// Database
	DatabaseURL string
	DBLogLevel  string

	// Logging
	LogLevel string

	// File Storage
	UploadPath  string
	MaxFileSize int64

	// Security
	PasswordScheme string

	// Webhooks
	WebhookWorkers   int
	WebhookQueueSize int
	WebhookTimeout   time.Duration

	// Metrics
	MetricsEnabled bool
}

// Load reads configuration from the environment, loading .env first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnv("PORT", "3001"),
		Host:           getEnv("HOST", "0.0.0.0"),
		DatabaseURL:    getEnv("DATABASE_URL", "./data/seven.db"),
		DBLogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		UploadPath:     getEnv("UPLOAD_PATH", "./uploads"),
		PasswordScheme: strings.ToLower(getEnv("PASSWORD_SCHEME", "plain")),
	}
	config.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+config.Port), "/")

	if maxFileSize, err := strconv.ParseInt(getEnv("MAX_FILE_SIZE", "10485760"), 10, 64); err == nil && maxFileSize > 0 {
		config.MaxFileSize = maxFileSize
	} else {
		config.MaxFileSize = 10 * 1024 * 1024
	}

	config.WebhookWorkers = getEnvInt("WEBHOOK_WORKERS", 2)
	config.WebhookQueueSize = getEnvInt("WEBHOOK_QUEUE_SIZE", 100)

	if timeout, err := time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "5s")); err == nil && timeout > 0 {
		config.WebhookTimeout = timeout
	} else {
		config.WebhookTimeout = 5 * time.Second
	}

	if enabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err == nil {
		config.MetricsEnabled = enabled
	} else {
		config.MetricsEnabled = true
	}

	return config, nil
}

// Addr returns the host:port pair the server listens on.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
