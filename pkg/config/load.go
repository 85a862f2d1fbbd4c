package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment, loading a .env file
// first when one is present.
func Load(logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Cache.FilePath == "" {
		cfg.Cache.FilePath = DefaultCachePath()
	}

	logger.Info("config loaded",
		"cache_backend", cfg.Cache.Backend,
		"cache_file_path", cfg.Cache.FilePath,
		"fetcher_interval", cfg.Fetcher.Interval,
		"fetcher_use_cache", cfg.Fetcher.UseCache,
		"feed_http_timeout", cfg.Feed.HTTPTimeout,
	)
	return &cfg, nil
}
