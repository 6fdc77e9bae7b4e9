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
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:intelscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Webhook WebhookConfig `yaml:"webhook" json:"webhook" jsonschema:"description=Webhook ingress configuration"`

	Ingest IngestConfig `yaml:"ingest" json:"ingest" jsonschema:"description=Durable processing configuration"`

	Export struct {
		WindowDays int `yaml:"window_days" json:"window_days" jsonschema:"default=5,description=Trailing window for exports in days"`
	} `yaml:"export" json:"export" jsonschema:"description=Export configuration"`
}

// WebhookConfig holds webhook ingress settings
type WebhookConfig struct {
	Secret string `yaml:"secret" json:"secret" jsonschema:"required,description=Shared bearer secret for webhook submissions (can use environment variable)"`
}

// IngestConfig holds durable processing settings
type IngestConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" json:"max_attempts" jsonschema:"default=3,minimum=1,description=Total insert attempts per event before parking it"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay" jsonschema:"default=100ms,description=Initial backoff delay between attempts"`
	MaxDelay     time.Duration `yaml:"max_delay" json:"max_delay" jsonschema:"default=2s,description=Maximum backoff delay between attempts"`
	Workers      int           `yaml:"workers" json:"workers" jsonschema:"default=4,description=Concurrent event deliveries"`
	PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=500ms,description=Idle bus poll interval"`
	BatchSize    int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=20,description=Events claimed per poll"`
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
		cfg.Database.DSN = "file:intelscope.db?cache=shared&mode=rwc&_txlock=immediate"
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

	// set defaults for ingest
	if cfg.Ingest.MaxAttempts == 0 {
		cfg.Ingest.MaxAttempts = 3
	}
	if cfg.Ingest.InitialDelay == 0 {
		cfg.Ingest.InitialDelay = 100 * time.Millisecond
	}
	if cfg.Ingest.MaxDelay == 0 {
		cfg.Ingest.MaxDelay = 2 * time.Second
	}
	if cfg.Ingest.Workers == 0 {
		cfg.Ingest.Workers = 4
	}
	if cfg.Ingest.PollInterval == 0 {
		cfg.Ingest.PollInterval = 500 * time.Millisecond
	}
	if cfg.Ingest.BatchSize == 0 {
		cfg.Ingest.BatchSize = 20
	}

	// set defaults for export
	if cfg.Export.WindowDays == 0 {
		cfg.Export.WindowDays = 5
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
	if cfg.Webhook.Secret == "" {
		return fmt.Errorf("webhook.secret is required")
	}

	if cfg.Ingest.MaxAttempts < 1 {
		return fmt.Errorf("ingest.max_attempts must be at least 1")
	}
	if cfg.Ingest.InitialDelay < 0 || cfg.Ingest.MaxDelay < cfg.Ingest.InitialDelay {
		return fmt.Errorf("ingest delays must satisfy 0 <= initial_delay <= max_delay")
	}
	if cfg.Ingest.Workers < 1 {
		return fmt.Errorf("ingest.workers must be at least 1")
	}

	if cfg.Export.WindowDays < 1 {
		return fmt.Errorf("export.window_days must be at least 1")
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

// GetWebhookSecret returns the shared bearer secret for webhook ingress
func (c *Config) GetWebhookSecret() string {
	return c.Webhook.Secret
}

// GetIngestConfig returns durable processing configuration
func (c *Config) GetIngestConfig() IngestConfig {
	return c.Ingest
}

// GetExportWindow returns the trailing export window as a duration
func (c *Config) GetExportWindow() time.Duration {
	return time.Duration(c.Export.WindowDays) * 24 * time.Hour
}
