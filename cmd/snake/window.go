package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window the size of the board (640x480 by default,
multiplied by window.scale) and play there.

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  Q/Esc        - Quit (closing the window also quits)`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	rt, err := cfg.Runtime(flagTPS, flagSeed)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := window.Options{
		Title:  cfg.Window.Title,
		Scale:  cfg.Window.Scale,
		Logger: logger,
	}
	logger.Info("opening window", "title", opts.Title, "tps", rt.TickRate, "seed", rt.Seed)
	if err := window.Run(snake.New(), rt, opts); err != nil {
		return fmt.Errorf("window game: %w", err)
	}
	return nil
}
