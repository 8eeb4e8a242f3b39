package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watchlist struct {
		Path string `yaml:"path"`
	} `yaml:"watchlist"`
	Refresh struct {
		Cron    string `yaml:"cron"`
		Workers int    `yaml:"workers"`
	} `yaml:"refresh"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCHLIST_PATH"); v != "" {
		cfg.Watchlist.Path = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Refresh.Cron = v
	}
	if v := os.Getenv("REFRESH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Refresh.Workers = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/omegascreen.db"
	}
	if cfg.Watchlist.Path == "" {
		cfg.Watchlist.Path = "configs/watchlist.yaml"
	}
	if cfg.Refresh.Cron == "" {
		cfg.Refresh.Cron = "0 0 6 * * *"
	}
	if cfg.Refresh.Workers == 0 {
		cfg.Refresh.Workers = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Refresh.Workers < 1 {
		return fmt.Errorf("refresh.workers must be positive")
	}
	if c.Watchlist.Path == "" {
		return fmt.Errorf("watchlist.path is required")
	}
	return nil
}
