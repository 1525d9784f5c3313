package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Load resolves the game configuration.
// Search order: customPath -> ~/.snaketui/configs/snake.yaml ->
// ./configs/snake.yaml -> embedded default.
// A custom path that fails to read, parse, or validate is an error; the
// fallback locations are best-effort and skipped silently.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("snake.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parse(data, "configs/snake.yaml"); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultYAML, "embedded default"); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the user config file path, or empty when the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaketui", "configs", filename)
}
