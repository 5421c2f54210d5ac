package main

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"StockResearch/internal/collector"
	"StockResearch/internal/common"
	"StockResearch/internal/config"
	"StockResearch/internal/research"
)

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

// setup loads config and wires the research service to the configured data source.
func setup() (*config.Config, arbor.ILogger, *research.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := common.NewLogger(cfg.Logging.Level)

	if useMock {
		mock := &collector.MockLoader{}
		logger.Warn().Msg("Using synthetic data")
		return cfg, logger, research.NewService(mock, mock, logger), nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("config validation: %w", err)
	}

	var loader collector.Loader
	var resolver collector.SymbolResolver = collector.StaticResolver(cfg.Names)
	if cfg.DataFeed.BaseURL != "" {
		feed := collector.NewDataFeed(cfg.DataFeed.BaseURL, cfg.DataFeed.APIKey,
			collector.WithTimeout(time.Duration(cfg.DataFeed.TimeoutSec)*time.Second),
			collector.WithProxy(cfg.Proxy),
			collector.WithRateLimit(cfg.DataFeed.RateLimit),
			collector.WithRetry(cfg.DataFeed.MaxRetries, time.Second),
			collector.WithLogger(logger),
		)
		loader = feed
		if len(cfg.Names) == 0 {
			resolver = feed
		}
	} else {
		loader = &collector.FileLoader{Dir: cfg.DataFeed.Dir}
	}

	logger.Info().Str("loader", loader.Name()).Msg("Data source configured")
	return cfg, logger, research.NewService(loader, resolver, logger), nil
}
