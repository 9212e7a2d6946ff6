package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  Enter/R      - Start or restart
  P/Space      - Pause
  Ctrl+S       - Save a text screenshot
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - 100ms start, 10ms faster per food, 50ms floor
  hard   - Fast start, high top speed
  fixed  - Never speeds up

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		RuntimeConfig: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
		Config:        cfg,
		Store:         store,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
