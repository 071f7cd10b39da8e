package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the whole application configuration, populated from environment variables.
type Config struct {
	App     AppConfig
	Session SessionConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Shop    ShopConfig
	MinIO   MinIOConfig
	Queue   QueueConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production, test
	Port        string
	Version     string
}

// SessionConfig controls the session cookie and where session data lives.
type SessionConfig struct {
	Store        string // redis, memory
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	CookieName  string
	ExpiryHours int
}

// ShopConfig holds the delivery rules applied to the bag and to orders.
type ShopConfig struct {
	FreeDeliveryThreshold      decimal.Decimal
	StandardDeliveryPercentage decimal.Decimal
}

// MinIOConfig configures book image storage. An empty Endpoint disables uploads.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// QueueConfig controls background jobs. They run through asynq on the Redis
// instance above; when disabled, book images are processed in the request.
type QueueConfig struct {
	Enabled     bool
	Concurrency int
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore"),
			Environment: env,
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Session: SessionConfig{
			Store:        getEnv("SESSION_STORE", "redis"),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "sessionid"),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", env == "production"),
			TTL:          time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*14)) * time.Hour,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", defaultJWTSecret),
			CookieName:  getEnv("JWT_COOKIE_NAME", "access_token"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		Shop: ShopConfig{
			FreeDeliveryThreshold:      getEnvDecimal("FREE_DELIVERY_THRESHOLD", decimal.NewFromInt(50)),
			StandardDeliveryPercentage: getEnvDecimal("STANDARD_DELIVERY_PERCENTAGE", decimal.NewFromInt(10)),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "bookstore"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Queue: QueueConfig{
			Enabled:     getEnvBool("QUEUE_ENABLED", false),
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects settings that are unsafe in production.
func (c *Config) Validate() error {
	switch c.Session.Store {
	case "redis", "memory":
	default:
		return fmt.Errorf("SESSION_STORE must be redis or memory, got %q", c.Session.Store)
	}

	if c.Shop.FreeDeliveryThreshold.IsNegative() || c.Shop.StandardDeliveryPercentage.IsNegative() {
		return fmt.Errorf("delivery settings must not be negative")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Session.Store == "memory" {
			return fmt.Errorf("SESSION_STORE=memory is not allowed in production")
		}
	}

	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
