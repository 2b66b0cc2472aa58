package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the daybook service.
// Environment variables are parsed from the DAYBOOK_ prefix, e.g.
// DAYBOOK_HTTP_PORT, DAYBOOK_DB_DRIVER.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage: sqlite (file path) or postgres (DSN)
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// DataDir is the base directory for local files (sqlite databases).
	DataDir string `envconfig:"DATA_DIR" default:".daybook"`

	// LocalStorePath is the offline-first key-value database used by the
	// CLI; derived from DataDir when empty.
	LocalStorePath string `envconfig:"LOCAL_STORE_PATH" default:""`

	// Auth
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"secret"`
	TokenLifetime time.Duration `envconfig:"TOKEN_LIFETIME" default:"1h"`

	// Remote API base URL used by the CLI client.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`

	// Notification scan cadence; must stay at or below one minute so no
	// lead-time window is skipped.
	NotifyInterval time.Duration `envconfig:"NOTIFY_INTERVAL" default:"30s"`
}

// ResolveDefaults validates the driver choice and derives file paths.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = filepath.Join(c.DataDir, "daybook.db")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.LocalStorePath == "" {
		c.LocalStorePath = filepath.Join(c.DataDir, "local.db")
	}
	if c.NotifyInterval > time.Minute {
		return fmt.Errorf("NOTIFY_INTERVAL must be <= 1m, got %s", c.NotifyInterval)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DAYBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	cfg := &Config{
		Environment:    EnvTesting,
		HTTPPort:       8080,
		DBDriver:       "sqlite",
		DataDir:        ".daybook-test",
		JWTSecret:      "test-secret",
		TokenLifetime:  time.Hour,
		APIBaseURL:     "http://localhost:8080",
		NotifyInterval: 30 * time.Second,
	}
	_ = cfg.ResolveDefaults()
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
