// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type UpstreamConfig struct {
	BaseURL         string `yaml:"base_url"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

type StoreConfig struct {
	// Path is the on-disk location of the preference store. Empty means
	// in-memory, which is what the tests use.
	Path string `yaml:"path"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"app"`

	Upstream UpstreamConfig `yaml:"upstream"`

	Store StoreConfig `yaml:"store"`

	Draft struct {
		Year int `yaml:"year"`
	} `yaml:"draft"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "rinkside"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.Upstream.CacheTTLMinutes = 5
	cfg.Upstream.TimeoutSeconds = 10
	cfg.Draft.Year = 2025
	return &cfg
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Environment overrides for deploy-time knobs
	if v := os.Getenv("NHL_API_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv("PREFS_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Upstream.CacheTTLMinutes < 0 {
		return fmt.Errorf("upstream cache TTL must not be negative")
	}
	if c.Upstream.TimeoutSeconds < 0 {
		return fmt.Errorf("upstream timeout must not be negative")
	}
	if c.Draft.Year < 0 {
		return fmt.Errorf("draft year must not be negative")
	}
	return nil
}

// CacheTTL returns the configured standings cache TTL, or zero when the
// client default should apply.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Upstream.CacheTTLMinutes) * time.Minute
}

// UpstreamTimeout returns the configured HTTP timeout for upstream calls,
// or zero when the client default should apply.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}
