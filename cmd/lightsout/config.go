package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is found in this order: --config, ~/.lightsout/config.yaml,
./configs/lightsout.yaml, then the built-in defaults. Flags given on the
command line are applied on top.

Examples:
  lightsout config
  lightsout config --difficulty hard > ~/.lightsout/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addBoardFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	cmd.OutOrStdout().Write(data) //nolint:errcheck // stdout
}
