package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game.

Controls:
  ←/a  →/d     - Move
  ↑/w          - Rotate
  ↓/s          - Soft drop (hold)
  P            - Pause
  R/Esc        - Restart
  Ctrl+S       - Save a screenshot to ~/.tetris/screenshots
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  tetris play
  tetris play --fps 60
  tetris play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := tetris.New(cfg, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		SoftDropReleaseTicks: cfg.Timing.SoftDropReleaseTicks,
		Logger:               logger,
	}

	if err := tui.Run(game, opts); err != nil {
		logger.Error("game aborted", "error", err)
		return err
	}
	return nil
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}
