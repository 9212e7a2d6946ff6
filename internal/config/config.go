// Package config provides YAML-based configuration loading and difficulty
// presets for the Snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the complete game configuration.
type Config struct {
	Board  Board       `yaml:"board"`
	Snake  SnakeConfig `yaml:"snake"`
	Speed  Speed       `yaml:"speed"`
	Input  Input       `yaml:"input"`
	Food   Food        `yaml:"food"`
	Player string      `yaml:"player"`
}

// Board defines the playfield in pixels.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cell   int `yaml:"cell"`
}

// SnakeConfig defines the snake at reset.
type SnakeConfig struct {
	StartLength int    `yaml:"start_length"`
	StartColor  string `yaml:"start_color"`
}

// Speed defines the tick interval ramp.
type Speed struct {
	InitialMS int `yaml:"initial_ms"`
	StepMS    int `yaml:"step_ms"`
	FloorMS   int `yaml:"floor_ms"`
}

// Input defines debounce and polling windows.
type Input struct {
	ResetDebounceMS int `yaml:"reset_debounce_ms"`
	PauseDebounceMS int `yaml:"pause_debounce_ms"`
	IdlePollMS      int `yaml:"idle_poll_ms"`
}

// Food defines food placement.
type Food struct {
	AvoidSnake bool `yaml:"avoid_snake"`
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	b := c.Board
	switch {
	case b.Cell <= 0:
		return fmt.Errorf("%w: board.cell must be positive, got %d", ErrInvalid, b.Cell)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size must be positive, got %dx%d", ErrInvalid, b.Width, b.Height)
	case b.Width%b.Cell != 0 || b.Height%b.Cell != 0:
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell %d", ErrInvalid, b.Width, b.Height, b.Cell)
	case c.Snake.StartLength < 1:
		return fmt.Errorf("%w: snake.start_length must be at least 1", ErrInvalid)
	case c.Snake.StartLength > b.Width/b.Cell:
		return fmt.Errorf("%w: snake.start_length %d does not fit %d columns", ErrInvalid, c.Snake.StartLength, b.Width/b.Cell)
	case c.Speed.InitialMS <= 0 || c.Speed.FloorMS <= 0:
		return fmt.Errorf("%w: speed intervals must be positive", ErrInvalid)
	case c.Speed.StepMS < 0:
		return fmt.Errorf("%w: speed.step_ms must not be negative", ErrInvalid)
	case c.Speed.FloorMS > c.Speed.InitialMS:
		return fmt.Errorf("%w: speed.floor_ms %d is above initial_ms %d", ErrInvalid, c.Speed.FloorMS, c.Speed.InitialMS)
	case c.Input.ResetDebounceMS < 0 || c.Input.PauseDebounceMS < 0 || c.Input.IdlePollMS < 0:
		return fmt.Errorf("%w: input windows must not be negative", ErrInvalid)
	}
	if _, err := core.ParseColor(c.Snake.StartColor); err != nil {
		return fmt.Errorf("%w: snake.start_color: %v", ErrInvalid, err)
	}
	return nil
}

// GameSettings converts the config into game settings.
// The config must have passed Validate.
func (c Config) GameSettings() snake.Settings {
	color, err := core.ParseColor(c.Snake.StartColor)
	if err != nil {
		color = core.ColorPurple
	}
	return snake.Settings{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Cell:         c.Board.Cell,
		StartLength:  c.Snake.StartLength,
		StartColor:   color,
		InitialSpeed: ms(c.Speed.InitialMS),
		SpeedStep:    ms(c.Speed.StepMS),
		MinSpeed:     ms(c.Speed.FloorMS),
		AvoidSnake:   c.Food.AvoidSnake,
	}
}

// Debounce returns the sampler hold-off windows.
func (c Config) Debounce() input.Debounce {
	return input.Debounce{
		Reset: ms(c.Input.ResetDebounceMS),
		Pause: ms(c.Input.PauseDebounceMS),
	}
}

// IdlePoll returns the polling delay while the snake is not moving.
func (c Config) IdlePoll() time.Duration {
	return ms(c.Input.IdlePollMS)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
