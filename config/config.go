package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string
	LogMode        string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Preview image storage
	S3Bucket string
	S3Region string

	// Rate limits for recipe writes, per user and hour
	RecipeCreateLimit int
	RecipeUpdateLimit int
	RateLimitWindow   time.Duration

	// StrictChildIDs rejects step/ingredient ids unknown to the stored
	// recipe instead of inserting them as new rows.
	StrictChildIDs bool

	// TokenTTL is the lifetime of issued bearer tokens
	TokenTTL time.Duration
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := defaults()

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ServerPort:        "8080",
		ServerHost:        "0.0.0.0",
		AllowedOrigins:    []string{"http://localhost:3000"},
		LogMode:           "development",
		DBDriver:          "postgres",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBUser:            "postgres",
		DBName:            "cookbook",
		DBSSLMode:         "disable",
		SQLitePath:        "cookbook.db",
		RedisHost:         "localhost",
		RedisPort:         "6379",
		S3Bucket:          "cookbook-recipe-previews",
		S3Region:          "us-east-1",
		RecipeCreateLimit: 20,
		RecipeUpdateLimit: 60,
		RateLimitWindow:   time.Hour,
		TokenTTL:          24 * time.Hour,
	}
}

// loadCIConfig loads configuration for CI using only environment variables
func loadCIConfig(cfg *Config) error {
	applyEnv(cfg, os.Getenv)
	if cfg.DBPassword == "" {
		cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	}
	if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD environment variable is required in CI environment")
	}
	return nil
}

// loadDevConfig reads environment variables, falling back to Docker secrets
// for anything not set.
func loadDevConfig(cfg *Config) {
	applyEnv(cfg, func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return readSecret(strings.ToLower(key))
	})
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "development-secret"
	}
}

// loadProdConfig takes credentials only from Docker secrets; plain settings
// may still come from the environment.
func loadProdConfig(cfg *Config) {
	applyEnv(cfg, func(key string) string {
		switch key {
		case "DB_PASSWORD", "JWT_SECRET", "REDIS_PASSWORD":
			return readSecret(strings.ToLower(key))
		}
		if v := os.Getenv(key); v != "" {
			return v
		}
		return readSecret(strings.ToLower(key))
	})
}

func applyEnv(cfg *Config, get func(string) string) {
	setString(&cfg.ServerPort, get("SERVER_PORT"))
	setString(&cfg.ServerHost, get("SERVER_HOST"))
	setString(&cfg.LogMode, get("LOG_MODE"))
	if origins := get("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}
	setString(&cfg.DBDriver, get("DB_DRIVER"))
	setString(&cfg.DBHost, get("DB_HOST"))
	setString(&cfg.DBPort, get("DB_PORT"))
	setString(&cfg.DBUser, get("DB_USER"))
	setString(&cfg.DBPassword, get("DB_PASSWORD"))
	setString(&cfg.DBName, get("DB_NAME"))
	setString(&cfg.DBSSLMode, get("DB_SSL_MODE"))
	setString(&cfg.SQLitePath, get("SQLITE_PATH"))
	setString(&cfg.RedisHost, get("REDIS_HOST"))
	setString(&cfg.RedisPort, get("REDIS_PORT"))
	setString(&cfg.RedisPassword, get("REDIS_PASSWORD"))
	setString(&cfg.RedisURL, get("REDIS_URL"))
	setInt(&cfg.RedisDB, get("REDIS_DB"))
	setString(&cfg.JWTSecret, get("JWT_SECRET"))
	setString(&cfg.S3Bucket, get("S3_BUCKET_NAME"))
	setString(&cfg.S3Region, get("AWS_REGION"))
	setInt(&cfg.RecipeCreateLimit, get("RECIPE_CREATE_LIMIT"))
	setInt(&cfg.RecipeUpdateLimit, get("RECIPE_UPDATE_LIMIT"))
	if v := get("RATE_LIMIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RateLimitWindow = d
		}
	}
	if v := get("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
	if v := get("RECIPE_STRICT_CHILD_IDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StrictChildIDs = b
		}
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v string) {
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// RedisAddr is host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
