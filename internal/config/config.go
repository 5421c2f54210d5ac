package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataFeed struct {
		BaseURL    string  `yaml:"base_url"`
		APIKey     string  `yaml:"api_key"`
		Dir        string  `yaml:"dir"`
		RateLimit  float64 `yaml:"rate_limit"`
		MaxRetries int     `yaml:"max_retries"`
		TimeoutSec int     `yaml:"timeout_sec"`
	} `yaml:"data_feed"`
	// Names is the static symbol -> display name table, used when the data
	// feed has no symbol endpoint.
	Names    map[string]string `yaml:"names"`
	Watch    []string          `yaml:"watch"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
	} `yaml:"schedule"`
	MCP struct {
		Port int `yaml:"port"`
	} `yaml:"mcp"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Proxy string `yaml:"proxy"`
}

// Path returns the config file location from CONFIG_PATH or the default.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// newDefaultConfig presets the fields where zero is a meaningful setting,
// so an explicit 0 in the file survives unmarshalling.
func newDefaultConfig() *Config {
	cfg := &Config{}
	cfg.DataFeed.RateLimit = 5
	cfg.DataFeed.MaxRetries = 3
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := newDefaultConfig()

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
	if v := os.Getenv("DATAFEED_BASE_URL"); v != "" {
		cfg.DataFeed.BaseURL = v
	}
	if v := os.Getenv("DATAFEED_API_KEY"); v != "" {
		cfg.DataFeed.APIKey = v
	}
	if v := os.Getenv("DATAFEED_DIR"); v != "" {
		cfg.DataFeed.Dir = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REPORT_CRON"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MCP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MCP_PORT: %w", err)
		}
		cfg.MCP.Port = port
	}

	// Defaults
	if cfg.DataFeed.TimeoutSec == 0 {
		cfg.DataFeed.TimeoutSec = 30
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 30 15 * * 1-5"
	}
	if cfg.MCP.Port == 0 {
		cfg.MCP.Port = 8501
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Validate checks that a data source is configured.
func (c *Config) Validate() error {
	if c.DataFeed.BaseURL == "" && c.DataFeed.Dir == "" {
		return fmt.Errorf("data_feed.base_url or data_feed.dir is required")
	}
	if c.DataFeed.RateLimit < 0 {
		return fmt.Errorf("data_feed.rate_limit must not be negative")
	}
	if c.DataFeed.MaxRetries < 0 {
		return fmt.Errorf("data_feed.max_retries must not be negative")
	}
	if c.MCP.Port <= 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("mcp.port out of range: %d", c.MCP.Port)
	}
	return nil
}

// ValidateBot checks the additional settings the Telegram bot needs.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Watch) == 0 {
		return fmt.Errorf("watch must list at least one symbol")
	}
	return nil
}
