package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Snake with a menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, play, and return to the menu when you quit a game.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  snake menu
  snake menu --difficulty hard
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	for {
		result, err := tui.RunMenu(preset, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		preset = result.Difficulty
		width, height = result.Width, result.Height

		if result.Choice == tui.MenuQuit {
			break
		}

		if result.Choice == tui.MenuScores {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		cfg, err := loadConfigPreset(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if err := tui.Run(tui.Options{
			RuntimeConfig: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
			Config:        cfg,
			Store:         store,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
