// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake menu             - Start menu: play, pick difficulty, view scores
//	snake play             - Play in this terminal
//	snake serve            - Start SSH server for remote play
//	snake run              - Let the autopilot play headless, logging events
//	snake scores           - Show high scores
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--player <name>       - Name recorded with scores
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a wrap-around board: eat food to grow, speed up and change
colour. Running into yourself ends the game.

Available commands:
  menu     - Start menu with difficulty picker
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  run      - Headless autopilot with structured logs
  scores   - View high scores

Examples:
  snake menu
  snake play
  snake play --difficulty hard --player ana
  snake serve --ssh :2222
  snake run --games 3 --log-level debug
  snake scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores (default from config)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig resolves the config file, applies the --difficulty preset and
// the player override.
func loadConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	return loadConfigPreset(preset)
}

func loadConfigPreset(preset config.DifficultyPreset) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	return cfg, nil
}
