package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runningSnapshot(t *testing.T) snake.Snapshot {
	t.Helper()
	g := snake.New(snake.DefaultSettings(), 1)
	g.Reset()
	return g.Snapshot()
}

func TestBoardRendererDrawsSnake(t *testing.T) {
	r := NewBoardRenderer(80, 23, "ana")
	r.Render(runningSnapshot(t))
	scr := r.Screen()

	hud := scr.Row(0)
	for _, want := range []string{"Score: 0", "Speed: 100ms", "Length: 5", "Player: ana"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// 32x18 board in a 66-wide box centered at x=7, below the HUD.
	if got := scr.GetCell(7, 2).Rune; got != '┌' {
		t.Errorf("Expected box corner at (7,2), got %q", got)
	}
	head := scr.GetCell(40, 12)
	if head.Rune != '█' || head.Color != core.ColorPurple {
		t.Errorf("Expected purple head at (40,12), got %+v", head)
	}
	body := scr.GetCell(42, 12)
	if body.Rune != '▓' || body.Color != core.ColorPurple {
		t.Errorf("Expected purple body at (42,12), got %+v", body)
	}
}

func TestBoardRendererOverlays(t *testing.T) {
	tests := []struct {
		name string
		snap snake.Snapshot
		want []string
	}{
		{
			name: "idle",
			snap: snake.New(snake.DefaultSettings(), 1).Snapshot(),
			want: []string{"S N A K E", "Press Enter to start"},
		},
		{
			name: "game over",
			snap: func() snake.Snapshot {
				s := runningSnapshot(t)
				s.Phase = snake.PhaseGameOver
				s.Score = 7
				return s
			}(),
			want: []string{"Game Over", "Score: 7", "Press R to restart"},
		},
		{
			name: "paused",
			snap: func() snake.Snapshot {
				s := runningSnapshot(t)
				s.Phase = snake.PhasePaused
				return s
			}(),
			want: []string{"Paused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBoardRenderer(80, 23, "")
			r.Render(tt.snap)
			out := r.Screen().String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Expected %q in:\n%s", w, out)
				}
			}
		})
	}
}

func TestBoardRendererTooSmall(t *testing.T) {
	r := NewBoardRenderer(40, 10, "")
	r.Render(runningSnapshot(t))

	out := r.Screen().String()
	if !strings.Contains(out, "Window too small") || !strings.Contains(out, "Need 66x22") {
		t.Errorf("Expected too-small overlay, got:\n%s", out)
	}

	r.Resize(80, 24)
	r.Render(runningSnapshot(t))
	if strings.Contains(r.Screen().String(), "Window too small") {
		t.Error("Overlay should go away after resize")
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "hi")
	scr.SetColor(3, 0, '█', core.ColorRed)
	scr.DrawText(0, 1, "there")

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "hi") || !strings.Contains(lines[0], "█") {
		t.Errorf("First line missing content: %q", lines[0])
	}
	if !strings.Contains(lines[1], "there") {
		t.Errorf("Second line missing content: %q", lines[1])
	}
}
