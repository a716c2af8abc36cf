package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file. Environment variables in the
// file are expanded before parsing.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 24 * time.Hour
	}
	if cfg.Connectivity.Interval == 0 {
		cfg.Connectivity.Interval = 10 * time.Second
	}
	if cfg.Connectivity.ProbeURL == "" {
		probe := cfg.Catalog.BaseURL
		if probe == "" {
			probe = "https://world.openfoodfacts.org"
		}
		cfg.Connectivity.ProbeURL = probe
	}

	return &cfg, nil
}
