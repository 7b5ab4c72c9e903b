package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"SpotWatch/internal/collector"
	"SpotWatch/internal/model"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Symbol string `yaml:"symbol"`
	} `yaml:"data_source"`
	Watch struct {
		IntervalSeconds float64 `yaml:"interval_seconds"`
		History         int     `yaml:"history"`
	} `yaml:"watch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; every field has a
// usable default.
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
	if v := os.Getenv("WATCH_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("WATCH_INTERVAL"); v != "" {
		if sec, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Watch.IntervalSeconds = sec
		}
	}
	if v := os.Getenv("WATCH_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Watch.History = n
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "SOLEUR"
	}
	if cfg.Watch.IntervalSeconds == 0 {
		cfg.Watch.IntervalSeconds = 0.5
	}
	if cfg.Watch.History == 0 {
		cfg.Watch.History = model.DefaultHistoryCapacity
	}

	return cfg, nil
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Watch.IntervalSeconds * float64(time.Second))
}

// Validate checks that the configuration can drive the watcher.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.Watch.IntervalSeconds <= 0 {
		return fmt.Errorf("watch.interval_seconds must be positive")
	}
	if c.Watch.History < collector.MinReadyTicks {
		return fmt.Errorf("watch.history must be at least %d, otherwise MACD never becomes ready", collector.MinReadyTicks)
	}
	return nil
}
