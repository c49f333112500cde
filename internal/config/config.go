package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPath = "./config/config.yaml"

type Config struct {
	Addr       string   `yaml:"addr"`
	CORSOrigin string   `yaml:"cors_origin"`
	Database   Database `yaml:"database"`
}

type Database struct {
	Path string `yaml:"path"`
}

// New loads configuration from defaults, then the yaml file (if present),
// then environment overrides.
func New() (*Config, error) {
	cfg := &Config{
		Addr:       "localhost:4000",
		CORSOrigin: "http://localhost:5001",
		Database: Database{
			Path: "spendwise.db",
		},
	}

	path := os.Getenv("SPENDWISE_CONFIG")
	if path == "" {
		path = defaultPath
	}

	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("SPENDWISE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SPENDWISE_CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}
	if v := os.Getenv("SPENDWISE_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}

	return cfg, nil
}
