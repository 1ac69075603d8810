package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Snake in the terminal. Each board cell is half a character tall,
so the default 32x24 board needs a 32x14 terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	rt, err := cfg.Runtime(flagTPS, flagSeed)
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so only a log file receives them
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting terminal game", "tps", rt.TickRate, "seed", rt.Seed)
	if err := tui.Run(snake.New(), rt, tui.Options{Width: width, Height: height, Logger: logger}); err != nil {
		return fmt.Errorf("terminal game: %w", err)
	}
	return nil
}
