package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadWorld loads the world configuration and applies environment overrides.
// Search order: customPath -> ~/.blightgrid/configs/world.yaml -> ./configs/world.yaml -> embedded default
func LoadWorld(customPath string) (WorldConfig, error) {
	cfg, err := readWorld(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readWorld(customPath string) (WorldConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultWorldConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("world.yaml"); userCfgPath != "" {
		if cfg, ok := parseWorld(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := parseWorld(filepath.Join("configs", "world.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultWorldConfig()
	if err := yaml.Unmarshal(defaultWorldYAML, &cfg); err != nil {
		return DefaultWorldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseWorld reads an optional config file. Missing or broken files are
// skipped so the next location in the search order can be tried.
func parseWorld(path string) (WorldConfig, bool) {
	cfg := DefaultWorldConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// ApplyEnv overrides cfg with any BLIGHTGRID_* variables that are set.
func ApplyEnv(cfg *WorldConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blightgrid", "configs", filename)
}
