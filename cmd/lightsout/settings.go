package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightsout/internal/config"
)

var (
	flagSize       int
	flagStrength   int
	flagDifficulty string
)

// addBoardFlags registers the flags that shape a generated board.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSize, "size", 5, "Board side length")
	cmd.Flags().IntVar(&flagStrength, "strength", 5, "Scramble presses per board")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveConfig loads the config file and applies the flags the user set.
// Flags left at their defaults never override the file.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("strength") {
		cfg.Board.Strength = flagStrength
	}
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("log") {
		cfg.Log.Path = flagLogPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// seedValue checks that the --seed flag fits a board seed.
func seedValue(seed int64) (uint32, error) {
	if seed < 0 || seed > math.MaxUint32 {
		return 0, fmt.Errorf("seed %d out of range [0, %d]", seed, uint32(math.MaxUint32))
	}
	return uint32(seed), nil
}
