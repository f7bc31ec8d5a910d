package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/garapon/constants"
)

// Version is set at build time via ldflags.
var Version = "dev"

type runOptions struct {
	configPath string
	debug      bool
	noAudio    bool
	seed       uint64
	seeded     bool
}

var opts runOptions

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Crank a lottery drum in your terminal",
	Long: `garapon draws a prize from a weighted table. Confirm the draw, then drag
the mouse clockwise around the drum for one full turn. The ball emerges,
rolls in, and the prize is revealed.

Keys:
  Enter/Space  open the draw dialog or continue
  y / n        confirm or cancel the draw
  r            reset to the title screen
  q / Esc      quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.seeded = cmd.Flags().Changed("seed")
		return run(opts)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.AppName, Version)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(constants.AppName + " version {{.Version}}\n")

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Write a debug log under the log directory")
	rootCmd.Flags().BoolVar(&opts.noAudio, "no-audio", false, "Disable pulse and click sounds")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed the prize draw for a reproducible result")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
