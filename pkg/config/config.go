package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	API      APIConfig      `yaml:"api" json:"api" jsonschema:"description=Top stories API configuration"`
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
}

// APIConfig holds top stories API client settings
type APIConfig struct {
	BaseURL       string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.nytimes.com/svc/topstories/v2,description=Top stories API endpoint"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"minLength=1,description=API key (can use environment variable)"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"description=Timeout of a single fetch attempt"`
	RetryAttempts int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=3,minimum=1,description=Total fetch attempts for retryable failures"`
	RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"description=Initial delay between fetch attempts doubled on each retry"`
	RateLimit     int           `yaml:"requests_per_minute" json:"requests_per_minute" jsonschema:"default=0,minimum=0,description=Maximum API requests per minute (0 for unlimited)"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,minLength=1,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:topstories.db?cache=shared&mode=rwc&_txlock=immediate,minLength=1,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,minimum=0,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,minimum=0,description=Connection maximum lifetime in seconds"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset values
func (c *Config) SetDefaults() {
	// set defaults for api
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.nytimes.com/svc/topstories/v2"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.API.RetryAttempts == 0 {
		c.API.RetryAttempts = 3
	}
	if c.API.RetryDelay == 0 {
		c.API.RetryDelay = time.Second
	}

	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 60 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:topstories.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.API.APIKey == "" {
		return fmt.Errorf("api.api_key is required")
	}
	if cfg.API.Timeout < 100*time.Millisecond {
		return fmt.Errorf("api.timeout must be at least 100ms")
	}
	if cfg.API.RetryAttempts < 1 {
		return fmt.Errorf("api.retry_attempts must be at least 1")
	}
	if cfg.API.RetryDelay < 0 {
		return fmt.Errorf("api.retry_delay must be non-negative")
	}
	if cfg.API.RateLimit < 0 {
		return fmt.Errorf("api.requests_per_minute must be non-negative")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns base URL for feed links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
