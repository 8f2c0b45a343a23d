package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".t2048"
	userConfigFile = "config.yaml"
	localConfig    = "configs/t2048.yaml"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Only an explicit customPath makes read, parse or validation failures fatal.
func Load(customPath string) (T2048Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return T2048Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return T2048Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), localConfig} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultT2048YAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, so omitted keys keep their default
// values, then validates the result.
func Parse(data []byte) (T2048Config, error) {
	cfg := Default()

	var probe struct {
		Spawn *struct {
			FourProbability *float64 `yaml:"four_probability"`
		} `yaml:"spawn"`
		Theme *struct {
			Tiles map[int]string `yaml:"tiles"`
		} `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return T2048Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	// A theme in the file replaces the default one instead of merging into it.
	if probe.Theme != nil && probe.Theme.Tiles != nil {
		cfg.Theme.Tiles = nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	// A difficulty without an explicit probability takes the preset's rate.
	if probe.Spawn == nil || probe.Spawn.FourProbability == nil {
		if cfg.Difficulty.Known() {
			cfg.Spawn.FourProbability = FourProbabilityForPreset(cfg.Difficulty)
		}
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, userConfigFile)
}
