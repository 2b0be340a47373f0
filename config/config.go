// Package config holds persistent client settings stored at
// <configDir>/config.yaml.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	filename = "config.yaml"

	// EnvBackendURL overrides BackendURL when set (directly or through .env).
	EnvBackendURL = "CARECHAT_URL"
)

// Config is the root configuration structure.
type Config struct {
	BackendURL string        `yaml:"backendURL,omitempty"`
	Theme      string        `yaml:"theme,omitempty"` // dark, light; empty = detect
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	Logging    LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level,omitempty"`
	File    string `yaml:"file,omitempty"` // relative paths resolve against the config dir
}

// DefaultDir returns ~/.carechat, or ".carechat" when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".carechat"
	}
	return filepath.Join(home, ".carechat")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "carechat.log",
		},
	}
}

// Load reads <dir>/config.yaml over the defaults. A missing file is not an
// error. EnvBackendURL, when set, wins over the file.
func Load(dir string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, errors.Wrap(err, "read config")
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), errors.Wrapf(err, "parse %s", filename)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		cfg.BackendURL = v
	}
	return cfg, nil
}

// Save writes cfg to <dir>/config.yaml, creating the directory if needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0o644)
}
