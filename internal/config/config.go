package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/ratelimit"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Provider  ProviderConfig
	Session   SessionConfig
	Refresh   RefreshConfig
	Watchlist WatchlistConfig
	CORS      CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// ProviderConfig holds price provider configuration
type ProviderConfig struct {
	BaseURL      string
	RequestDelay time.Duration
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	// Key is the base64 fernet key used to sign and encrypt session tokens.
	Key string
	TTL time.Duration
}

// RefreshConfig holds the auto-refresh schedule configuration
type RefreshConfig struct {
	Interval time.Duration
}

// WatchlistConfig holds the symbols tracked by default at startup
type WatchlistConfig struct {
	DefaultSymbols []string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	requestDelay, err := getEnvDuration("PROVIDER_REQUEST_DELAY", ratelimit.DefaultDelay)
	if err != nil {
		return nil, err
	}
	refreshInterval, err := getEnvDuration("REFRESH_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getEnvDuration("SESSION_TTL", 12*time.Hour)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/crypto_tracker.db"),
		},
		Provider: ProviderConfig{
			BaseURL:      getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
			RequestDelay: requestDelay,
		},
		Session: SessionConfig{
			Key: os.Getenv("SESSION_KEY"),
			TTL: sessionTTL,
		},
		Refresh: RefreshConfig{
			Interval: refreshInterval,
		},
		Watchlist: WatchlistConfig{
			DefaultSymbols: getEnvList("DEFAULT_SYMBOLS", []string{"BTC", "ETH", "SOL", "ADA", "DOGE"}),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if config.Session.Key == "" {
		return nil, fmt.Errorf("SESSION_KEY is required (base64 fernet key)")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// getEnvList gets a comma-separated environment variable or returns a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
