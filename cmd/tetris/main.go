// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play
//	tetris config            - Print the effective configuration as YAML
//	tetris shapes            - List the piece catalogue
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Load a custom config YAML
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle.

Steer the falling piece, complete rows to clear them and score points.
Every ten cleared rows raise the level.

Available commands:
  play     - Start a game (default)
  config   - Print the effective configuration
  shapes   - List the pieces

Examples:
  tetris
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-file tetris.log --log-level debug
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shapesCmd)
}
