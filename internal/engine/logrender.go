package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// LogRenderer is the display-less renderer: phase and score changes are
// logged at info level, every frame at debug level.
type LogRenderer struct {
	logger *log.Logger
	phase  snake.Phase
	score  int
	seen   bool
}

// NewLogRenderer creates a renderer writing to logger.
func NewLogRenderer(logger *log.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

// Render implements Renderer.
func (r *LogRenderer) Render(s snake.Snapshot) {
	head, _ := s.Head()
	r.logger.Debug("frame",
		"tick", s.Tick,
		"head", head,
		"food", s.Food,
		"dir", s.Direction,
		"len", s.Length(),
	)

	if !r.seen || s.Phase != r.phase {
		r.logger.Info("phase", "phase", s.Phase, "score", s.Score)
	}
	if r.seen && s.Score > r.score {
		r.logger.Info("food eaten",
			"score", s.Score,
			"speed", s.Speed,
			"color", s.Color.Hex(),
		)
	}

	r.seen = true
	r.phase = s.Phase
	r.score = s.Score
}
