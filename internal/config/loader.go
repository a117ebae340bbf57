package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.snake-tui/config.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first; a bad explicit path is an error, not a fallback.
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath(); userPath != "" {
		if cfg, err := loadFile(userPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// loadFile reads and validates a single config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake-tui", "config.yaml")
}
