// lightsout is the Lights Out puzzle for the terminal.
//
// Usage:
//
//	lightsout                - Play (same as "lightsout play")
//	lightsout play           - Play a board
//	lightsout show           - Print a generated board and its solution
//	lightsout config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Board seed for reproducible layouts (0 = fresh)
//	--config <path>  - Path to a config YAML
//	--log <path>     - Log file (default: ~/.lightsout/lightsout.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightsout",
	Short: "Lights Out - switch every light off",
	Long: `Lights Out is a puzzle played on a square grid of lights.
Pressing a light toggles it and its four neighbors; the goal is to switch
every light off. Boards are generated from a seed, so any layout can be
replayed or shared.

Available commands:
  play     - Play a board (default)
  show     - Print a generated board and its solution
  config   - Print the effective configuration

Examples:
  lightsout
  lightsout play --size 9 --difficulty hard
  lightsout --seed 2504604244
  lightsout show --seed 2504604244 --size 5`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = fresh random seed)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default from config)")

	addBoardFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error in the CLI's format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
