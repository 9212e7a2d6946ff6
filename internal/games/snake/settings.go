package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Settings holds the tunables of one game. Board sizes are in pixels and
// must be multiples of Cell.
type Settings struct {
	Width  int
	Height int
	Cell   int

	StartLength int
	StartColor  core.Color

	InitialSpeed time.Duration // Tick interval after reset
	SpeedStep    time.Duration // Interval reduction per food
	MinSpeed     time.Duration // Interval floor

	// AvoidSnake places food only on cells not covered by the body.
	// Off by default: food may land on the snake.
	AvoidSnake bool
}

// DefaultSettings returns the 480x270 board with 15px cells.
func DefaultSettings() Settings {
	return Settings{
		Width:        480,
		Height:       270,
		Cell:         15,
		StartLength:  5,
		StartColor:   core.ColorPurple,
		InitialSpeed: 100 * time.Millisecond,
		SpeedStep:    10 * time.Millisecond,
		MinSpeed:     50 * time.Millisecond,
	}
}

// Cols returns the board width in cells.
func (s Settings) Cols() int {
	return s.Width / s.Cell
}

// Rows returns the board height in cells.
func (s Settings) Rows() int {
	return s.Height / s.Cell
}
