package config

import (
	"time"

	"github.com/mlehnert/binsight/internal/infra/catalog"
	redisclient "github.com/mlehnert/binsight/internal/infra/redis"
	"github.com/mlehnert/binsight/internal/infra/storage/postgres"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server       ServerConfig       `yaml:"server"`
	Catalog      catalog.Config     `yaml:"catalog"`
	Cache        CacheConfig        `yaml:"cache"`
	Database     postgres.Config    `yaml:"database"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// CacheConfig selects the memory-tier implementation. When Redis.URL is
// set the cache is shared via Redis, otherwise it is in-process.
type CacheConfig struct {
	TTL   time.Duration      `yaml:"ttl"`
	Redis redisclient.Config `yaml:"redis"`
}

// ConnectivityConfig holds the connectivity probe settings.
type ConnectivityConfig struct {
	ProbeURL string        `yaml:"probe_url"`
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
