// Package engine runs the tick loop: sample the input lines, advance the
// game, draw a snapshot. One mutex covers each read-modify-draw iteration so
// a front-end reading the drawn frame never sees it half written.
package engine

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// DefaultIdlePoll is the delay between samples while the snake is not
// moving (idle, paused, game over).
const DefaultIdlePoll = 10 * time.Millisecond

// Options configures a Loop.
type Options struct {
	// IdlePoll is the sampling delay when the game is not advancing.
	IdlePoll time.Duration

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger
}

// Loop owns a game and is its only mutator.
type Loop struct {
	mu       sync.Mutex
	game     *snake.Game
	sampler  *input.Sampler
	renderer Renderer
	idlePoll time.Duration
	logger   *log.Logger

	onGameOver []func(snake.Snapshot)
	reported   bool // game over hooks already ran for the current game
}

// New creates a loop. The renderer may be nil.
func New(game *snake.Game, sampler *input.Sampler, renderer Renderer, opts Options) *Loop {
	if opts.IdlePoll <= 0 {
		opts.IdlePoll = DefaultIdlePoll
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if renderer == nil {
		renderer = Renderers(nil)
	}
	return &Loop{
		game:     game,
		sampler:  sampler,
		renderer: renderer,
		idlePoll: opts.IdlePoll,
		logger:   opts.Logger,
	}
}

// OnGameOver registers fn to run once per game when the snake dies.
// Hooks run after the lock is released.
func (l *Loop) OnGameOver(fn func(snake.Snapshot)) {
	l.mu.Lock()
	l.onGameOver = append(l.onGameOver, fn)
	l.mu.Unlock()
}

// Step runs one iteration at time now and returns how long to wait before
// the next one: the game speed while the snake moves, the idle poll
// interval otherwise.
func (l *Loop) Step(now time.Time) time.Duration {
	l.mu.Lock()

	frame := l.sampler.Sample(now)
	g := l.game

	if g.Running() && !g.Paused() {
		g.Steer(frame)
		g.Advance()
	}

	var died *snake.Snapshot
	if g.GameOver() && !l.reported {
		l.reported = true
		s := g.Snapshot()
		died = &s
		l.logger.Info("game over", "score", s.Score, "length", s.Length(), "ticks", s.Tick)
	}

	if frame.Has(core.ActionReset) {
		g.Reset()
		l.reported = false
		l.logger.Debug("game reset")
	}
	if frame.Has(core.ActionPause) {
		g.TogglePause()
		l.logger.Debug("pause toggled", "paused", g.Paused())
	}

	l.renderer.Render(g.Snapshot())

	delay := l.idlePoll
	if g.Running() && !g.Paused() {
		delay = g.Speed()
	}
	hooks := l.onGameOver
	l.mu.Unlock()

	if died != nil {
		for _, fn := range hooks {
			fn(*died)
		}
	}
	return delay
}

// Run drives Step from a timer until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-timer.C:
			timer.Reset(l.Step(now))
		}
	}
}

// RunVirtual drives Step on a simulated clock that starts at start and
// jumps ahead by each returned delay, so nothing sleeps. It stops when done
// reports true after a step or ctx is cancelled, and returns the number of
// steps taken.
func (l *Loop) RunVirtual(ctx context.Context, start time.Time, done func(steps int) bool) (int, error) {
	now := start
	for steps := 0; ; {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		now = now.Add(l.Step(now))
		steps++
		if done(steps) {
			return steps, nil
		}
	}
}

// Do runs fn with the loop lock held, for reading what the renderer drew.
func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

// Snapshot returns the current game state.
func (l *Loop) Snapshot() snake.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Snapshot()
}
