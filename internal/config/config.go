package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	CORS    CORSConfig
	Session SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// DefaultEmail is used when a page opens a session without naming an employee.
	DefaultEmail string
}

// BackendConfig points at the timesheet backend service
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig controls how long idle page sessions are kept in memory
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8081"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DefaultEmail: getEnv("DEFAULT_EMPLOYEE_EMAIL", ""),
	}

	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL: strings.TrimRight(getEnv("BACKEND_URL", "http://127.0.0.1:5000"), "/"),
		Timeout: backendTimeout,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("SESSION_SWEEP_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}

	config.Session = SessionConfig{
		TTL:           sessionTTL,
		SweepInterval: sweepInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_URL must be an absolute URL, got %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// SlogLevel converts LOG_LEVEL into a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
