package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
// DirStop is the zero value and only appears before the first reset.
type Direction int

const (
	DirStop Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction that would double the snake back on itself.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStop
	}
}

// Offset returns the displacement of one move of the given cell size.
func (d Direction) Offset(cell int) core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -cell}
	case DirDown:
		return core.Point{Y: cell}
	case DirLeft:
		return core.Point{X: -cell}
	case DirRight:
		return core.Point{X: cell}
	default:
		return core.Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirStop:
		return "stop"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// steerOrder is the precedence used when several direction lines are
// pressed in the same tick.
var steerOrder = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
	{core.ActionDown, DirDown},
}
