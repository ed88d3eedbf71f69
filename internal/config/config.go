package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrDatabaseURLNotSet = errors.New("database url not set in config or DATABASE_URL environment")

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Session struct {
		CookieName      string `yaml:"cookie_name"`
		LifetimeSeconds int64  `yaml:"lifetime_seconds"`
		KeyFile         string `yaml:"key_file"`
	} `yaml:"session"`
	Server struct {
		Port      string `yaml:"port"`
		Templates string `yaml:"templates"`
	} `yaml:"server"`
}

// LoadConfig reads configuration from the specified YAML file. The
// DATABASE_URL environment variable, when set, overrides the database URL
// from the file; startup fails if neither source provides one.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.Database.URL = url
	}
	if config.Database.URL == "" {
		return nil, ErrDatabaseURLNotSet
	}

	if config.Session.CookieName == "" {
		config.Session.CookieName = "jwt"
	}
	if config.Session.LifetimeSeconds == 0 {
		config.Session.LifetimeSeconds = 7 * 24 * 60 * 60
	}
	if config.Session.KeyFile == "" {
		config.Session.KeyFile = "secret.key"
	}
	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}
	if config.Server.Templates == "" {
		config.Server.Templates = "web/templates/*.html"
	}

	return config, nil
}
