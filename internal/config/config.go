package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration. It is built once in main and
// passed explicitly into each component; nothing reads it through a global.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	FHIR     FHIRConfig     `yaml:"fhir"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type JWTConfig struct {
	SecretKey         string `yaml:"secret_key"`
	DefaultTTLMinutes int    `yaml:"default_ttl_minutes"`
	LoginTTLMinutes   int    `yaml:"login_ttl_minutes"`
}

type FHIRConfig struct {
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultTTL is the token lifetime used when a caller does not ask for one.
func (c JWTConfig) DefaultTTL() time.Duration {
	return time.Duration(c.DefaultTTLMinutes) * time.Minute
}

// LoginTTL is the token lifetime requested by the login endpoint.
func (c JWTConfig) LoginTTL() time.Duration {
	return time.Duration(c.LoginTTLMinutes) * time.Minute
}

// Default returns the built-in configuration the original deployment shipped
// with. A config file only overrides the fields it sets.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8000"},
		Database: DatabaseConfig{Path: "./diabetes_tracker.db"},
		JWT: JWTConfig{
			SecretKey:         "secret-key",
			DefaultTTLMinutes: 15,
			LoginTTLMinutes:   30,
		},
		FHIR: FHIRConfig{BaseURL: "https://hapi.fhir.org/baseR4"},
		Log:  LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads a yaml config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
