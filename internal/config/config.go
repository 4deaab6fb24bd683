// Package config loads the optional client configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Every field is optional; flags and
// environment variables fill in whatever is missing.
type Config struct {
	Server   string `yaml:"server"`   // backend base URL
	City     string `yaml:"city"`     // default city for weather/pollen lookups
	StateDir string `yaml:"stateDir"` // session storage directory
	CacheDir string `yaml:"cacheDir"` // HTTP cache directory
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: "http://localhost:8080",
		City:   "Bucharest",
	}
}

// DefaultPath returns the conventional config file location, or empty when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".officebook", "config.yaml")
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
