package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagGames    int
	flagTicks    int
	flagLogLevel string
	flagRealtime bool
	flagSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Let the autopilot play without a display",
	Long: `Run the game loop headless. The autopilot steers toward the food and
restarts after each game over; events are logged to stderr.

By default the loop runs on a simulated clock as fast as possible. Use
--realtime to honour the tick interval.

Examples:
  snake run --games 3
  snake run --ticks 500 --log-level debug
  snake run --realtime --seed 42
  snake run --games 10 --save --player bot`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagGames, "games", 1, "Stop after this many game overs (0 = no limit)")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many loop steps (0 = no limit)")
	runCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Sleep between steps like the interactive game")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished games in the scores database")
}

func runHeadless(_ *cobra.Command, _ []string) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Every step draws exactly one frame.
	var steps atomic.Int64
	counter := engine.RenderFunc(func(snake.Snapshot) {
		if n := steps.Add(1); flagTicks > 0 && n >= int64(flagTicks) {
			cancel()
		}
	})

	pilot := input.NewAutopilot(true)
	game := snake.New(cfg.GameSettings(), seed)
	loop := engine.New(game, input.NewSampler(pilot, cfg.Debounce()),
		engine.Renderers{engine.NewLogRenderer(logger), pilot, counter},
		engine.Options{IdlePoll: cfg.IdlePoll(), Logger: logger},
	)

	if flagSave {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			logger.Warn("could not open scores database", "error", openErr)
		} else {
			defer store.Close()
			loop.OnGameOver(engine.RecordScores(store, cfg.Player, logger))
		}
	}

	var games, best atomic.Int64
	loop.OnGameOver(func(s snake.Snapshot) {
		if int64(s.Score) > best.Load() {
			best.Store(int64(s.Score))
		}
		if n := games.Add(1); flagGames > 0 && n >= int64(flagGames) {
			cancel()
		}
	})

	logger.Info("autopilot starting", "seed", seed, "games", flagGames, "ticks", flagTicks)

	if flagRealtime {
		err = loop.Run(ctx)
	} else {
		_, err = loop.RunVirtual(ctx, time.Now(), func(int) bool {
			return ctx.Err() != nil
		})
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("loop stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("autopilot finished", "games", games.Load(), "steps", steps.Load(), "best", best.Load())
}
