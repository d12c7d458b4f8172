// Package common provides shared utilities for Voxfolio
package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Voxfolio
type Config struct {
	Environment string        `toml:"environment"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Trading212   Trading212Config   `toml:"trading212"`
	AlphaVantage AlphaVantageConfig `toml:"alphavantage"`
	HackerNews   HackerNewsConfig   `toml:"hackernews"`
}

// Trading212Config holds brokerage API configuration.
// The default base URL targets the paper-trading environment; set
// base_url (or TRADING212_BASE_URL) to the live endpoint for real money.
type Trading212Config struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *Trading212Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// AlphaVantageConfig holds market-data API configuration
type AlphaVantageConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *AlphaVantageConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// HackerNewsConfig holds story-listing API configuration
type HackerNewsConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *HackerNewsConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Clients: ClientsConfig{
			Trading212: Trading212Config{
				BaseURL:   "https://demo.trading212.com/api/v0",
				RateLimit: 1,
				Timeout:   "30s",
			},
			AlphaVantage: AlphaVantageConfig{
				BaseURL:   "https://www.alphavantage.co",
				RateLimit: 1,
				Timeout:   "10s",
			},
			HackerNews: HackerNewsConfig{
				BaseURL: "https://hacker-news.firebaseio.com/v0",
				Timeout: "10s",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VOX_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("VOX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("TRADING212_BASE_URL"); v != "" {
		config.Clients.Trading212.BaseURL = v
	}
	if v := os.Getenv("TRADING212_API_KEY"); v != "" {
		config.Clients.Trading212.APIKey = v
	}
	if v := os.Getenv("TRADING212_API_SECRET"); v != "" {
		config.Clients.Trading212.APISecret = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_KEY"); v != "" {
		config.Clients.AlphaVantage.APIKey = v
	}
}

// ValidateBrokerage returns an error when brokerage credentials are missing.
// Checked before any client is constructed so the failure never reaches the network.
func (c *Config) ValidateBrokerage() error {
	if c.Clients.Trading212.APIKey == "" || c.Clients.Trading212.APISecret == "" {
		return fmt.Errorf("TRADING212_API_KEY and TRADING212_API_SECRET must be set (env or .env.local)")
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
