// Package config loads the process configuration from the environment. All
// values are read once at construction time and threaded through
// constructors; nothing here is mutated afterwards.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Cache selects and parameterizes the cache backend.
type Cache struct {
	Backend   string `envconfig:"BACKEND" default:"memory"` // memory | file
	FilePath  string `envconfig:"FILE_PATH"`
	JSONCodec string `envconfig:"JSON_CODEC" default:"stdlib"` // stdlib | goccy
}

// Fetcher parameterizes the background worker.
type Fetcher struct {
	UseCache bool          `envconfig:"USE_CACHE" default:"true"`
	Interval time.Duration `envconfig:"INTERVAL" default:"12h"`
}

// Feed parameterizes the HTTP transport. An empty BaseURL means the ECB
// publication address.
type Feed struct {
	BaseURL     string        `envconfig:"BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Supervisor parameterizes the fetcher lifecycle.
type Supervisor struct {
	AutoStart bool `envconfig:"AUTO_START" default:"true"`
}

// App is the whole process configuration.
type App struct {
	Cache      Cache      `envconfig:"FOREX_CACHE"`
	Fetcher    Fetcher    `envconfig:"FOREX_FETCHER"`
	Feed       Feed       `envconfig:"FOREX_FEED"`
	Supervisor Supervisor `envconfig:"FOREX_SUPERVISOR"`
}

// DefaultCachePath is where the file backend stores its document when no
// path is configured: <user-cache-dir>/.forex_cache.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ".forex_cache")
}
