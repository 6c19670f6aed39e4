package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds presentation settings only. The payload and its
// destination are fixed at build time and are not configurable.
type Config struct {
	ColorTheme string `yaml:"color_theme"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		ColorTheme: "auto",
		LogLevel:   "warn",
	}
}

// DefaultPath returns the config file location.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "resumepdf", "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "resumepdf", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "resumepdf", "config.yaml"), nil
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ColorTheme = strings.ToLower(strings.TrimSpace(cfg.ColorTheme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if !isValid(cfg.ColorTheme, "auto", "dark", "light") {
		cfg.ColorTheme = "auto"
	}
	if !isValid(cfg.LogLevel, "debug", "info", "warn", "error") {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

func isValid(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
