package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type sink struct {
	saved []storage.ScoreEntry
	err   error
}

func (s *sink) SaveScore(e storage.ScoreEntry) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}

func deadSnake(score, length int) snake.Snapshot {
	segs := make([]core.Point, length)
	return snake.Snapshot{Phase: snake.PhaseGameOver, Score: score, Segments: segs}
}

func TestRecordScores(t *testing.T) {
	s := &sink{}
	hook := RecordScores(s, "ana", nil)

	hook(deadSnake(0, 5))
	if len(s.saved) != 0 {
		t.Fatalf("Zero scores should not be recorded, got %+v", s.saved)
	}

	hook(deadSnake(3, 8))
	if len(s.saved) != 1 {
		t.Fatalf("Expected one saved score, got %d", len(s.saved))
	}
	if got := s.saved[0]; got.Player != "ana" || got.Score != 3 || got.Length != 8 {
		t.Errorf("Unexpected entry: %+v", got)
	}
}

func TestRecordScoresLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	hook := RecordScores(&sink{err: errors.New("disk full")}, "bo", logger)
	hook(deadSnake(2, 7))

	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("Expected failure to be logged, got %q", buf.String())
	}
}

func TestRecordScoresNilSink(t *testing.T) {
	hook := RecordScores(nil, "ana", nil)
	hook(deadSnake(1, 6)) // must not panic
}
