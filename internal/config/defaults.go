package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// Default returns the built-in configuration. It matches defaults/t2048.yaml.
func Default() T2048Config {
	return T2048Config{
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Theme: ThemeConfig{
			Tiles: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "yellow",
				16:   "orange",
				32:   "red",
				64:   "bright_red",
				128:  "bright_yellow",
				256:  "green",
				512:  "bright_green",
				1024: "cyan",
				2048: "bright_magenta",
			},
			Fallback: "bright_cyan",
		},
		Difficulty: DifficultyNormal,
	}
}
