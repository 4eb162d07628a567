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
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	Throttle    int64         `yaml:"throttle" json:"throttle" jsonschema:"default=100,minimum=1,description=Maximum concurrent requests"`
	MaxBodySize int64         `yaml:"max_body_size" json:"max_body_size" jsonschema:"default=65536,minimum=1024,description=Maximum request body size in bytes"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:tgsurvey.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string (sqlite file or postgres:// URL)"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,minimum=1,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,minimum=1,description=Connection maximum lifetime in seconds"`
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables, database credentials usually come this way
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.Throttle == 0 {
		cfg.Server.Throttle = 100
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = 64 * 1024
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:tgsurvey.db?cache=shared&mode=rwc&_txlock=immediate"
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
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.Throttle < 0 {
		return fmt.Errorf("server throttle must be non-negative")
	}
	if cfg.Database.MaxIdleConns > cfg.Database.MaxOpenConns {
		return fmt.Errorf("database max_idle_conns (%d) exceeds max_open_conns (%d)",
			cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLimits returns request limits for the http server
func (c *Config) GetLimits() (throttle, maxBodySize int64) {
	return c.Server.Throttle, c.Server.MaxBodySize
}

// GetDatabaseConfig returns database configuration
func (c *Config) GetDatabaseConfig() DatabaseConfig {
	return c.Database
}

// ConnMaxLifetimeDuration returns connection lifetime as duration
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}
