package config

import (
	_ "embed"
)

//go:embed defaults/lightsout.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:     5,
			AltSize:  9,
			Strength: 5,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyFixed,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
		Theme: ThemeConfig{
			On:     "bright_white",
			Off:    "gray",
			Cursor: "bright_yellow",
			Hint:   "bright_cyan",
			Won:    "bright_green",
		},
		Log: LogConfig{
			Path:  "~/.lightsout/lightsout.log",
			Level: "info",
		},
	}
}
