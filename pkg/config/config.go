package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/salescope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:salescope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration for quota usage tracking"`

	NewsAPI NewsAPIConfig `yaml:"newsapi" json:"newsapi" jsonschema:"description=Upstream news search API configuration"`

	Triggers TriggersConfig `yaml:"triggers" json:"triggers" jsonschema:"description=Sales trigger catalog and fetch policy"`

	Schedule struct {
		RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=6h,description=How often the trigger batch re-runs"`
		SnapshotTTL     time.Duration `yaml:"snapshot_ttl" json:"snapshot_ttl" jsonschema:"default=24h,description=How long a trigger snapshot stays fresh"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
}

// NewsAPIConfig holds upstream API settings
type NewsAPIConfig struct {
	Endpoint       string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://newsapi.org,description=API base URL"`
	APIKey         string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=API key (can use environment variable)"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	DailyLimit     int           `yaml:"daily_limit" json:"daily_limit" jsonschema:"default=100,description=Daily call budget shared across all callers"`
	Language       string        `yaml:"language" json:"language" jsonschema:"default=en,description=Article language code"`
	SortBy         string        `yaml:"sort_by" json:"sort_by" jsonschema:"default=publishedAt,description=Result ordering (relevancy/popularity/publishedAt)"`
	RateLimit      time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"description=Minimum spacing between upstream calls (0 disables pacing)"`
	SearchDaysBack int           `yaml:"search_days_back" json:"search_days_back" jsonschema:"default=30,description=Default search window for ad-hoc queries in days"`
	ExcludeDomains []string      `yaml:"exclude_domains" json:"exclude_domains" jsonschema:"description=Domains filtered out of search results"`
}

// TriggersConfig holds the trigger catalog and fetch policy
type TriggersConfig struct {
	DaysBack int             `yaml:"days_back" json:"days_back" jsonschema:"default=7,description=Search window for trigger fetches in days"`
	Region   string          `yaml:"region" json:"region" jsonschema:"description=Optional region scope applied to every trigger query"`
	Catalog  []TriggerConfig `yaml:"catalog" json:"catalog" jsonschema:"description=Trigger catalog (stock catalog used when empty)"`
}

// TriggerConfig is a single named trigger with its canned boolean query
type TriggerConfig struct {
	Name  string `yaml:"name" json:"name" jsonschema:"required,description=Trigger name"`
	Query string `yaml:"query" json:"query" jsonschema:"required,description=Boolean query string with AND/OR/NOT operators"`
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

	setDefaults(&cfg)

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

// setDefaults fills in zero-valued fields
func setDefaults(cfg *Config) {
	// server defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database defaults
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:salescope.db?cache=shared&mode=rwc&_txlock=immediate"
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

	// upstream API defaults
	if cfg.NewsAPI.Endpoint == "" {
		cfg.NewsAPI.Endpoint = "https://newsapi.org"
	}
	if cfg.NewsAPI.Timeout == 0 {
		cfg.NewsAPI.Timeout = 30 * time.Second
	}
	if cfg.NewsAPI.DailyLimit == 0 {
		cfg.NewsAPI.DailyLimit = 100
	}
	if cfg.NewsAPI.Language == "" {
		cfg.NewsAPI.Language = "en"
	}
	if cfg.NewsAPI.SortBy == "" {
		cfg.NewsAPI.SortBy = string(domain.SortByPublishedAt)
	}
	if cfg.NewsAPI.SearchDaysBack == 0 {
		cfg.NewsAPI.SearchDaysBack = 30
	}
	if cfg.NewsAPI.ExcludeDomains == nil {
		// journal domains, not useful for sales prospecting
		cfg.NewsAPI.ExcludeDomains = []string{"arxiv.org", "ieee.org", "springer.com"}
	}

	// trigger defaults
	if cfg.Triggers.DaysBack == 0 {
		cfg.Triggers.DaysBack = 7
	}

	// schedule defaults
	if cfg.Schedule.RefreshInterval == 0 {
		cfg.Schedule.RefreshInterval = 6 * time.Hour
	}
	if cfg.Schedule.SnapshotTTL == 0 {
		cfg.Schedule.SnapshotTTL = 24 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate upstream API config
	if cfg.NewsAPI.APIKey == "" {
		return fmt.Errorf("newsapi.api_key is required")
	}
	if cfg.NewsAPI.DailyLimit < 1 {
		return fmt.Errorf("newsapi.daily_limit must be at least 1")
	}
	if !domain.SortBy(cfg.NewsAPI.SortBy).Valid() {
		return fmt.Errorf("newsapi.sort_by must be one of relevancy, popularity, publishedAt")
	}
	if cfg.NewsAPI.Timeout < time.Second {
		return fmt.Errorf("newsapi.timeout must be at least 1 second")
	}

	// validate trigger catalog
	seen := make(map[string]struct{}, len(cfg.Triggers.Catalog))
	for i, t := range cfg.Triggers.Catalog {
		if t.Name == "" {
			return fmt.Errorf("triggers.catalog[%d].name is required", i)
		}
		if t.Query == "" {
			return fmt.Errorf("triggers.catalog[%d].query is required", i)
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("duplicate trigger name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	if cfg.Triggers.DaysBack < 1 {
		return fmt.Errorf("triggers.days_back must be at least 1")
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

// GetNewsAPIConfig returns upstream API configuration
func (c *Config) GetNewsAPIConfig() NewsAPIConfig {
	return c.NewsAPI
}

// GetTriggersConfig returns trigger catalog configuration
func (c *Config) GetTriggersConfig() TriggersConfig {
	return c.Triggers
}
