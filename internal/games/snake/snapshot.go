package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the lifecycle state of a game.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Segments  []core.Point // Head at index 0
	Food      core.Point
	Score     int
	Color     core.Color
	Speed     time.Duration
	Direction Direction

	Width  int
	Height int
	Cell   int
}

// Snapshot returns a copy of the current state. Mutating it does not
// affect the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.Phase(),
		Segments:  slices.Clone(g.snake),
		Food:      g.food,
		Score:     g.score,
		Color:     g.color,
		Speed:     g.speed,
		Direction: g.direction,
		Width:     g.settings.Width,
		Height:    g.settings.Height,
		Cell:      g.settings.Cell,
	}
}

// Head returns the head segment, if any.
func (s Snapshot) Head() (core.Point, bool) {
	if len(s.Segments) == 0 {
		return core.Point{}, false
	}
	return s.Segments[0], true
}

// Length returns the number of segments.
func (s Snapshot) Length() int {
	return len(s.Segments)
}
