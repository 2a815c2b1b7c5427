package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StrengthForPreset returns the scramble strength for a preset.
// The second result is false for DifficultyFixed, which keeps the configured
// strength.
func StrengthForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 5, true
	case DifficultyHard:
		return 10, true
	default:
		return 0, false
	}
}

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset records preset in cfg and overrides the board strength unless
// the preset is fixed.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if strength, ok := StrengthForPreset(preset); ok {
		cfg.Board.Strength = strength
	}
}
