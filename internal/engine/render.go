package engine

import "github.com/vovakirdan/tui-snake/internal/games/snake"

// Renderer draws one frame. It is called with the loop lock held and must
// not call back into the loop.
type Renderer interface {
	Render(s snake.Snapshot)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(s snake.Snapshot)

// Render implements Renderer.
func (f RenderFunc) Render(s snake.Snapshot) {
	f(s)
}

// Renderers fans a frame out to several renderers in order.
type Renderers []Renderer

// Render implements Renderer.
func (rs Renderers) Render(s snake.Snapshot) {
	for _, r := range rs {
		if r != nil {
			r.Render(s)
		}
	}
}
