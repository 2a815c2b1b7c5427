// Package config provides YAML-based configuration loading, difficulty
// presets and validation for Lights Out.
package config

// Config contains all configuration for the game and its front end.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Runtime    RuntimeConfig    `yaml:"runtime"`
	Theme      ThemeConfig      `yaml:"theme"`
	Log        LogConfig        `yaml:"log"`
}

// BoardConfig defines the board dimensions and scramble strength.
type BoardConfig struct {
	Size     int `yaml:"size"`
	AltSize  int `yaml:"alt_size"` // Size used by the S key
	Strength int `yaml:"strength"` // Generation presses per board
}

// DifficultyConfig selects a named strength preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// RuntimeConfig defines loop settings.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation steps per second
}

// ThemeConfig maps board elements to color names (see core.ParseColor).
type ThemeConfig struct {
	On     string `yaml:"on"`
	Off    string `yaml:"off"`
	Cursor string `yaml:"cursor"`
	Hint   string `yaml:"hint"`
	Won    string `yaml:"won"`
}

// LogConfig defines where and how verbosely the front end logs.
type LogConfig struct {
	Path  string `yaml:"path"`  // "~" expands to the home directory
	Level string `yaml:"level"` // debug, info, warn, error
}
