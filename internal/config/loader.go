package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVania loads the platformer configuration.
// Search order: customPath -> ~/.vania/configs/vania.yaml -> ./configs/vania.yaml -> embedded default.
// Only a custom path reports read or parse errors; the other locations are optional.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadVania(customPath string) (VaniaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return VaniaConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return VaniaConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("vania.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "vania.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultVaniaYAML)
	if err != nil {
		return DefaultVaniaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (VaniaConfig, error) {
	cfg := DefaultVaniaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return VaniaConfig{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return VaniaConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vania", "configs", filename)
}

// ApplyVaniaPreset modifies the config based on a difficulty preset.
func ApplyVaniaPreset(cfg *VaniaConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 6
		cfg.Player.MagCapacity = 16
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Player.MagCapacity = 8
	}
}
