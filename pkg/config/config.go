// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:zenbridge.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		CheckInterval int `yaml:"check_interval" json:"check_interval" jsonschema:"default=30,description=Fallback feed check interval in minutes when no stored configuration exists"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Processing struct {
		Delay   time.Duration `yaml:"delay" json:"delay" jsonschema:"default=2s,description=Simulated processing delay per article"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	} `yaml:"processing" json:"processing" jsonschema:"description=Article processing configuration"`

	Feed FeedSeed `yaml:"feed" json:"feed" jsonschema:"description=Initial feed configuration, stored on first run"`
}

// FeedSeed describes the feed configuration seeded into storage when none
// exists yet. Later changes go through the API, this section is read once.
type FeedSeed struct {
	SourceURL     string `yaml:"source_url" json:"source_url" jsonschema:"required,description=URL of the source RSS or Atom feed"`
	Title         string `yaml:"title" json:"title" jsonschema:"description=Title of the regenerated feed"`
	Description   string `yaml:"description" json:"description" jsonschema:"description=Description of the regenerated feed"`
	SiteLink      string `yaml:"site_link" json:"site_link" jsonschema:"description=Site link of the regenerated feed"`
	Language      string `yaml:"language" json:"language" jsonschema:"default=ru,description=Language of the regenerated feed"`
	CheckInterval int    `yaml:"check_interval" json:"check_interval" jsonschema:"default=30,description=Feed check interval in minutes"`
	IsActive      bool   `yaml:"is_active" json:"is_active" jsonschema:"default=true,description=Whether the feed is synchronized"`
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

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:zenbridge.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule and processing
	if cfg.Schedule.CheckInterval == 0 {
		cfg.Schedule.CheckInterval = 30
	}
	if cfg.Processing.Delay == 0 {
		cfg.Processing.Delay = 2 * time.Second
	}
	if cfg.Processing.Timeout == 0 {
		cfg.Processing.Timeout = 30 * time.Second
	}

	// set defaults for the feed seed
	if cfg.Feed.Language == "" {
		cfg.Feed.Language = "ru"
	}
	if cfg.Feed.CheckInterval == 0 {
		cfg.Feed.CheckInterval = 30
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate feed seed
	if cfg.Feed.SourceURL == "" {
		return fmt.Errorf("feed.source_url is required")
	}
	u, err := url.Parse(cfg.Feed.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("feed.source_url must be an http(s) URL")
	}
	if cfg.Feed.CheckInterval < 1 {
		return fmt.Errorf("feed.check_interval must be at least 1 minute")
	}

	// validate processing config
	if cfg.Processing.Delay < 0 {
		return fmt.Errorf("processing.delay must be non-negative")
	}
	if cfg.Processing.Timeout < time.Second {
		return fmt.Errorf("processing.timeout must be at least 1 second")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// FeedConfig converts the seed section into a storable feed configuration
func (c *Config) FeedConfig() *domain.FeedConfig {
	return &domain.FeedConfig{
		SourceURL:     c.Feed.SourceURL,
		Title:         c.Feed.Title,
		Description:   c.Feed.Description,
		SiteLink:      c.Feed.SiteLink,
		Language:      c.Feed.Language,
		CheckInterval: c.Feed.CheckInterval,
		IsActive:      c.Feed.IsActive,
	}
}
