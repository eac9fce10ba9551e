// Package config loads application settings from a YAML file with
// environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	llmAPIKeyEnv   = "PROMOBOARD_LLM_API_KEY"
	databaseDSNEnv = "PROMOBOARD_DATABASE_DSN"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
}

// ServerConfig holds the API and metrics listener ports
type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

// DatabaseConfig selects the storage driver and connection string
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// LLMConfig describes how to reach the text generation model. BaseURL may
// point at any OpenAI-compatible endpoint.
type LLMConfig struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 9090,
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			DSN:    "promoboard.db",
		},
		LLM: LLMConfig{
			Model: "gpt-4-turbo-preview",
		},
	}
}

// Load reads YAML configuration from path (if it exists) and applies
// environment overrides. A missing file falls back to defaults so the
// service can run with nothing but an API key in the environment.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv(llmAPIKeyEnv); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv(databaseDSNEnv); v != "" {
		cfg.Database.DSN = v
	}

	return cfg, nil
}
