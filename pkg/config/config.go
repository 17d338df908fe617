package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the application configuration
type Config struct {
	Token      string `yaml:"token"`
	Secret     string `yaml:"secret"`
	APIVersion string `yaml:"api_version"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Insecure   bool   `yaml:"insecure"`
	PerPage    int    `yaml:"per_page"`
}

// LoadConfig loads configuration from the optional YAML config file and the
// environment. Environment variables override file values.
func LoadConfig() (*Config, error) {
	config := &Config{
		APIVersion: "v1",
		PerPage:    200,
	}

	if path := configFilePath(); path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if value := os.Getenv("ONEANDONE_TOKEN"); value != "" {
		config.Token = value
	}
	if value := os.Getenv("ONEANDONE_SECRET"); value != "" {
		config.Secret = value
	}
	if value := os.Getenv("ONEANDONE_API_VERSION"); value != "" {
		config.APIVersion = value
	}
	if value := os.Getenv("ONEANDONE_HOST"); value != "" {
		config.Host = value
	}

	// Validate required values
	if config.Token == "" {
		return nil, errors.New("ONEANDONE_TOKEN environment variable is required")
	}

	return config, nil
}

// configFilePath returns the config file location. ONEANDONE_CONFIG overrides
// the default under the user's home directory.
func configFilePath() string {
	if path := os.Getenv("ONEANDONE_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".oneandone", "config.yaml")
}
