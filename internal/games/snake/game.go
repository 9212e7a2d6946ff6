// Package snake implements the Snake state machine: movement on a toroidal
// board, self collision, scoring and the speed ramp. It does no I/O and no
// timing of its own; a driver calls Advance once per tick and sleeps for
// Speed() between ticks.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game holds the complete state of one Snake game.
type Game struct {
	settings Settings
	rng      *rand.Rand
	tick     uint64

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction
	color     core.Color

	food core.Point

	// Game state flags
	running  bool
	gameOver bool
	paused   bool

	score int
	speed time.Duration
}

// New creates an idle game. Nothing moves until Reset is called.
func New(settings Settings, seed int64) *Game {
	return &Game{
		settings:  settings,
		rng:       rand.New(rand.NewSource(seed)),
		direction: DirStop,
		color:     settings.StartColor,
		speed:     settings.InitialSpeed,
	}
}

// Settings returns the settings the game was created with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset starts a new game: a horizontal strip in the middle of the board
// heading left, fresh food, zero score and the initial speed.
func (g *Game) Reset() {
	s := g.settings
	cx := (s.Cols() / 2) * s.Cell
	cy := (s.Rows() / 2) * s.Cell

	g.snake = g.snake[:0]
	for i := 0; i < s.StartLength; i++ {
		g.snake = append(g.snake, core.Point{
			X: core.Wrap(cx+i*s.Cell, s.Width),
			Y: cy,
		})
	}

	g.placeFood()
	g.direction = DirLeft
	g.running = true
	g.gameOver = false
	g.paused = false
	g.score = 0
	g.speed = s.InitialSpeed
	g.color = s.StartColor
	g.tick = 0
}

// SetDirection requests a new heading. Reversals and DirStop are ignored.
func (g *Game) SetDirection(d Direction) bool {
	if g.gameOver || d == DirStop || d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// Steer applies the direction actions of a frame. When several are set the
// first acceptable one in up, left, right, down order wins.
func (g *Game) Steer(in core.InputFrame) {
	for _, s := range steerOrder {
		if in.Has(s.action) && g.SetDirection(s.dir) {
			return
		}
	}
}

// TogglePause flips the paused flag of a running game.
func (g *Game) TogglePause() {
	if !g.running || g.gameOver {
		return
	}
	g.paused = !g.paused
}

// Advance moves the snake one cell. It is a no-op while idle, paused or
// after game over.
func (g *Game) Advance() {
	if g.direction == DirStop || !g.running || g.paused || g.gameOver || len(g.snake) == 0 {
		return
	}
	g.tick++

	s := g.settings
	next := g.snake[0].Add(g.direction.Offset(s.Cell))
	next.X = core.Wrap(next.X, s.Width)
	next.Y = core.Wrap(next.Y, s.Height)

	// Checked against the whole body, tail included.
	if g.isSnakeAt(next) {
		g.running = false
		g.gameOver = true
		return
	}

	g.snake = append(g.snake, core.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = next

	if next == g.food {
		g.placeFood()
		g.score++
		g.color = core.Color(g.rng.Intn(0xFFFFFF))
		g.speed = max(g.speed-s.SpeedStep, s.MinSpeed)
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

// placeFood puts the food on a random grid cell.
func (g *Game) placeFood() {
	s := g.settings
	if s.AvoidSnake {
		var free []core.Point
		for y := 0; y < s.Rows(); y++ {
			for x := 0; x < s.Cols(); x++ {
				p := core.Point{X: x * s.Cell, Y: y * s.Cell}
				if !g.isSnakeAt(p) {
					free = append(free, p)
				}
			}
		}
		if len(free) > 0 {
			g.food = free[g.rng.Intn(len(free))]
			return
		}
	}

	g.food = core.Point{
		X: g.rng.Intn(s.Cols()) * s.Cell,
		Y: g.rng.Intn(s.Rows()) * s.Cell,
	}
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Speed returns the current tick interval.
func (g *Game) Speed() time.Duration {
	return g.speed
}

// Running reports whether the game is in progress (paused or not).
func (g *Game) Running() bool {
	return g.running
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// GameOver reports whether the snake has run into itself.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Phase derives the lifecycle phase from the state flags.
func (g *Game) Phase() Phase {
	switch {
	case g.gameOver:
		return PhaseGameOver
	case !g.running:
		return PhaseIdle
	case g.paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Speed: %s, Phase: %s\n", g.tick, g.score, g.speed, g.Phase())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Color: %s\n", len(g.snake), g.direction, g.color.Hex())
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y)
	}
	return b.String()
}
