package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for in the config directories.
const FileName = "bombjack.yaml"

// LoadBombJack loads Bomb Jack configuration.
// Search order: customPath -> ~/.bombjack/configs/bombjack.yaml -> ./configs/bombjack.yaml -> embedded default.
// Files are decoded over the defaults, so omitted fields keep their default value.
func LoadBombJack(customPath string) (BombJackConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// Resolve loads the configuration like LoadBombJack and also reports where it
// came from ("embedded" when no file was used).
func Resolve(customPath string) (BombJackConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BombJackConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BombJackConfig{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBombJackYAML)
	if err != nil {
		return DefaultBombJackConfig(), "defaults", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (BombJackConfig, error) {
	cfg := DefaultBombJackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BombJackConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BombJackConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BombJackConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bombjack", "configs", FileName)
}
