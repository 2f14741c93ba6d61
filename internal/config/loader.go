package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadStarDodge loads Star Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/stardodge.{yaml,toml} ->
// ./configs/stardodge.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadStarDodge(customPath string) (StarDodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultStarDodgeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{
		userConfigPath("stardodge.yaml"),
		userConfigPath("stardodge.toml"),
		filepath.Join("configs", "stardodge.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultStarDodgeConfig()
	if err := yaml.Unmarshal(defaultStarDodgeYAML, &cfg); err != nil {
		return DefaultStarDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (StarDodgeConfig, bool) {
	cfg := DefaultStarDodgeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// decode picks the format from the file extension. Anything that is not
// .toml is treated as YAML.
func decode(path string, data []byte, cfg *StarDodgeConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyStarDodgePreset modifies the config based on a difficulty preset.
func ApplyStarDodgePreset(cfg *StarDodgeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the starting crowd based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.InitialCount = 2
		cfg.Enemies.SpawnPeriod = 8.0
	case DifficultyHard:
		cfg.Enemies.InitialCount = 6
		cfg.Enemies.SpawnPeriod = 3.5
	}
}
