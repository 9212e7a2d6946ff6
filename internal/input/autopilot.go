package input

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Autopilot drives the lines from the frames it is shown: it steers toward
// the food along the shorter way around the board and avoids stepping on
// its own body when another heading is free. With AutoRestart it also
// presses reset on the idle and game over screens.
type Autopilot struct {
	AutoRestart bool

	mu   sync.Mutex
	want [lineCount]bool
}

// NewAutopilot creates an autopilot.
func NewAutopilot(autoRestart bool) *Autopilot {
	return &Autopilot{AutoRestart: autoRestart}
}

// Render records the decision for the next sample.
func (a *Autopilot) Render(s snake.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.want = [lineCount]bool{}
	switch s.Phase {
	case snake.PhaseIdle, snake.PhaseGameOver:
		if a.AutoRestart {
			a.want[LineReset] = true
		}
	case snake.PhaseRunning:
		if l, ok := chooseLine(s); ok {
			a.want[l] = true
		}
	}
}

// Level implements LineReader.
func (a *Autopilot) Level(l Line) bool {
	if l < 0 || l >= lineCount {
		return true
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.want[l]
}

var headings = []struct {
	line Line
	dir  snake.Direction
}{
	{LineUp, snake.DirUp},
	{LineLeft, snake.DirLeft},
	{LineRight, snake.DirRight},
	{LineDown, snake.DirDown},
}

// chooseLine picks the heading with the shortest toroidal distance to the
// food among the safe ones.
func chooseLine(s snake.Snapshot) (Line, bool) {
	head, ok := s.Head()
	if !ok || s.Cell <= 0 {
		return 0, false
	}

	body := make(map[core.Point]bool, len(s.Segments))
	for _, seg := range s.Segments {
		body[seg] = true
	}

	best, bestDist, found := Line(0), 0, false
	for _, h := range headings {
		if h.dir == s.Direction.Opposite() {
			continue
		}
		next := head.Add(h.dir.Offset(s.Cell))
		next.X = core.Wrap(next.X, s.Width)
		next.Y = core.Wrap(next.Y, s.Height)
		if body[next] {
			continue
		}
		d := torusDist(next.X, s.Food.X, s.Width) + torusDist(next.Y, s.Food.Y, s.Height)
		if !found || d < bestDist {
			best, bestDist, found = h.line, d, true
		}
	}
	return best, found
}

func torusDist(a, b, size int) int {
	d := core.Abs(a - b)
	return min(d, size-d)
}
