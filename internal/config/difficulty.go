package config

// DifficultyPreset represents a named difficulty level.
// Difficulty only changes how often a 4 is spawned.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Known reports whether the preset is one of the defined names.
func (p DifficultyPreset) Known() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// FourProbabilityForPreset returns the spawn probability of a 4 for a preset.
// Unknown presets get the normal rate.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.10
	}
}

// ApplyPreset sets the difficulty and its spawn probability on cfg.
// An empty preset leaves cfg untouched.
func ApplyPreset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
	cfg.Spawn.FourProbability = FourProbabilityForPreset(preset)
}
