// Package config provides configuration loading and structs for the medqa server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Docs   DocsConfig   `yaml:"docs"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EngineConfig holds identity strings reported by the API.
type EngineConfig struct {
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	Disclaimer string `yaml:"disclaimer"`
}

// DocsConfig holds document seeding settings.
type DocsConfig struct {
	SamplePath string `yaml:"sample_path"`
}

// CORSConfig holds allowed origins for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads and parses the config file at path, applies defaults, then
// applies environment overrides. A missing file is not an error: defaults
// plus environment are used, so the server runs with no config file at all.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// applyEnvOverrides lets the environment override file values, mirroring the
// deployment convention this service replaced. An optional .env file is
// loaded by the entry point before this runs.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Debug = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SAMPLE_DOCS_PATH"); v != "" {
		cfg.Docs.SamplePath = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.AllowedOrigins = origins
	}
}
