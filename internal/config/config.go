// Package config provides YAML-based game configuration loading and
// difficulty presets for 2048.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// T2048Config contains all configuration for the game.
type T2048Config struct {
	Spawn      SpawnConfig      `yaml:"spawn"`
	Theme      ThemeConfig      `yaml:"theme"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// SpawnConfig controls new tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a new tile is 4 instead of 2
}

// ThemeConfig maps tile values to color names (see core.ParseColor).
type ThemeConfig struct {
	Tiles map[int]string `yaml:"tiles"`
	// Fallback is used for tiles without an explicit entry.
	Fallback string `yaml:"fallback"`
}

// Validate checks ranges and names.
func (c T2048Config) Validate() error {
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v outside [0, 1]", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	if c.Difficulty != "" && !c.Difficulty.Known() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	for value, name := range c.Theme.Tiles {
		if !engine.IsTileValue(value) {
			return fmt.Errorf("%w: theme tile %d is not a power of two", ErrInvalidConfig, value)
		}
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: theme tile %d: %v", ErrInvalidConfig, value, err)
		}
	}
	if c.Theme.Fallback != "" {
		if _, err := core.ParseColor(c.Theme.Fallback); err != nil {
			return fmt.Errorf("%w: theme fallback: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// TileColors resolves the theme into a palette. Invalid names fall back to
// the default color; call Validate first to reject them instead.
func (c T2048Config) TileColors() Palette {
	p := Palette{tiles: make(map[int]core.Color, len(c.Theme.Tiles))}
	for value, name := range c.Theme.Tiles {
		if col, err := core.ParseColor(name); err == nil {
			p.tiles[value] = col
		}
	}
	if col, err := core.ParseColor(c.Theme.Fallback); err == nil {
		p.fallback = col
	}
	return p
}

// Palette maps tile values to screen colors.
type Palette struct {
	tiles    map[int]core.Color
	fallback core.Color
}

// Color returns the color for a tile value.
func (p Palette) Color(value int) core.Color {
	if c, ok := p.tiles[value]; ok {
		return c
	}
	return p.fallback
}
