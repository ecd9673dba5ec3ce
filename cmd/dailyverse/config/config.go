package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds connection settings and logging preferences. Presentation
// preferences (theme, text size) live in the local state store instead, the
// way the original app kept them in browser storage.
type Config struct {
	ServerURL string `yaml:"server_url"`
	ShareURL  string `yaml:"share_url,omitempty"` // public site URL for share links; defaults to ServerURL
	Debug     bool   `yaml:"debug"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ServerURL: "http://localhost:5000",
		LogLevel:  "info",
	}
}

// Dir returns the directory where config and local state are stored.
func Dir() (string, error) {
	if dir := os.Getenv("DAILYVERSE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dailyverse"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from disk, applying env overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := File()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyEnv(cfg), nil
	}
	if err != nil {
		return applyEnv(cfg), err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("DAILYVERSE_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if os.Getenv("DAILYVERSE_DEBUG") == "1" {
		cfg.Debug = true
	}
	return cfg
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := File()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Share returns the URL to embed in share links.
func (c Config) Share() string {
	if c.ShareURL != "" {
		return c.ShareURL
	}
	return c.ServerURL
}
