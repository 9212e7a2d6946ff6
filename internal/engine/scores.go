package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreSink persists finished games. *storage.Store implements it.
type ScoreSink interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// RecordScores returns a game over hook that saves each finished game for
// player. Games that ended without eating anything are not recorded.
// Saving is best-effort: failures are logged and the game goes on.
func RecordScores(sink ScoreSink, player string, logger *log.Logger) func(snake.Snapshot) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(s snake.Snapshot) {
		if sink == nil || s.Score == 0 {
			return
		}
		id, err := sink.SaveScore(storage.ScoreEntry{
			Player: player,
			Score:  s.Score,
			Length: s.Length(),
		})
		if err != nil {
			logger.Warn("could not save score", "player", player, "score", s.Score, "error", err)
			return
		}
		logger.Debug("score saved", "id", id, "player", player, "score", s.Score)
	}
}
