package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lightsout/internal/config"
	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
	"github.com/vovakirdan/tui-lightsout/internal/logging"
	"github.com/vovakirdan/tui-lightsout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start playing Lights Out.

Controls:
  Mouse/Space/Enter - Press a light
  Arrows/hjkl       - Move the cursor
  R                 - Reset current board (same seed)
  N                 - New board (new seed)
  S                 - Switch between the two board sizes
  ?                 - Show a hint
  F11               - Toggle full screen
  Ctrl+S            - Save a screenshot
  Esc/Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 3 scramble presses
  normal - 5 scramble presses
  hard   - 10 scramble presses
  fixed  - Use board.strength from the config

Examples:
  lightsout play
  lightsout play --size 9
  lightsout play --difficulty hard
  lightsout play --strength 12 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	seed, err := seedValue(flagSeed)
	if err != nil {
		fail("%v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := openLogger(cfg.Log)
	defer closeLog()

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
		Seed:     int64(seed),
	}

	if err := tui.Run(lightsout.New(opts), runtime, logger); err != nil {
		logger.Error("game stopped", "error", err)
		fail("%v", err)
	}
}

// openLogger opens the configured log file. Failures are reported as a
// warning and the game runs without logging.
func openLogger(cfg config.LogConfig) (*log.Logger, func()) {
	path, err := config.ExpandPath(cfg.Path)
	if err == nil {
		logger, closeLog, openErr := logging.Open(path, cfg.Level)
		if openErr == nil {
			return logger, func() {
				//nolint:errcheck // Best-effort close on exit
				closeLog()
			}
		}
		err = openErr
	}
	fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	return logging.Discard(), func() {}
}
