package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	hudHeight = 2 // HUD line and separator
	cellWidth = 2 // Terminal columns per board cell, keeps cells square-ish
)

// BoardRenderer draws snapshots into a screen buffer. It implements
// engine.Renderer; the buffer is only valid under the loop lock.
type BoardRenderer struct {
	screen *core.Screen
	player string
}

// NewBoardRenderer creates a renderer for a terminal of the given size.
func NewBoardRenderer(width, height int, player string) *BoardRenderer {
	return &BoardRenderer{
		screen: core.NewScreen(width, height),
		player: player,
	}
}

// Screen returns the buffer drawn by the last Render.
func (r *BoardRenderer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the terminal size used by the next Render.
func (r *BoardRenderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// Render implements engine.Renderer.
func (r *BoardRenderer) Render(s snake.Snapshot) {
	dst := r.screen
	dst.Clear()

	r.renderHUD(s)

	if s.Cell <= 0 {
		return
	}
	cols, rows := s.Width/s.Cell, s.Height/s.Cell
	box := core.NewRect(0, hudHeight, cols*cellWidth+2, rows+2)
	box.X = (dst.Width() - box.W) / 2

	if box.X < 0 || box.Bottom() > dst.Height() {
		r.renderOverlay("Window too small",
			fmt.Sprintf("Need %dx%d", box.W, box.Bottom()),
			"Resize to continue")
		return
	}

	dst.DrawBox(box, core.ColorGray)

	toScreen := func(p core.Point) (int, int) {
		return box.X + 1 + (p.X/s.Cell)*cellWidth, box.Y + 1 + p.Y/s.Cell
	}
	fill := func(p core.Point, ch rune, c core.Color) {
		x, y := toScreen(p)
		for i := 0; i < cellWidth; i++ {
			dst.SetColor(x+i, y, ch, c)
		}
	}

	if s.Phase != snake.PhaseIdle {
		fill(s.Food, '█', core.ColorRed)
		for i := len(s.Segments) - 1; i >= 0; i-- {
			glyph := '▓'
			if i == 0 {
				glyph = '█'
			}
			fill(s.Segments[i], glyph, s.Color)
		}
	}

	switch s.Phase {
	case snake.PhaseIdle:
		r.renderOverlay("S N A K E", "Press Enter to start")
	case snake.PhasePaused:
		r.renderOverlay("Paused", "Press P to continue")
	case snake.PhaseGameOver:
		r.renderOverlay("Game Over", fmt.Sprintf("Score: %d", s.Score), "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (r *BoardRenderer) renderHUD(s snake.Snapshot) {
	dst := r.screen
	hud := fmt.Sprintf(" Snake | Score: %d  Speed: %dms  Length: %d", s.Score, s.Speed.Milliseconds(), s.Length())
	if r.player != "" {
		hud += "  Player: " + r.player
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered box with one message per line.
func (r *BoardRenderer) renderOverlay(lines ...string) {
	dst := r.screen

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := core.NewRect(0, 0, maxLen+4, len(lines)*2+1)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l)
	}
}
