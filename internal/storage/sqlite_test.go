package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{Player: "ana", Score: 10, Length: 15},
		{Player: "bo", Score: 5, Length: 10},
		{Player: "ana", Score: 20, Length: 25},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "ana" || scores[0].Length != 25 {
		t.Errorf("Unexpected top entry: %+v", scores[0])
	}
	if scores[0].RunID == "" || scores[0].RunID == scores[1].RunID {
		t.Errorf("Each game should get its own run ID: %q %q", scores[0].RunID, scores[1].RunID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreDefaultPlayer(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 3}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, err := store.TopScores(1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "Player" {
		t.Errorf("Expected default player name, got %+v", scores)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	e := ScoreEntry{RunID: "run-1", Player: "ana", Score: 1}
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(e); err == nil {
		t.Error("Saving the same run twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Score: (i + 1) * 10})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	all, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore(ScoreEntry{Player: "ana", Score: 10})
	store.SaveScore(ScoreEntry{Player: "bo", Score: 30})
	store.SaveScore(ScoreEntry{Player: "ana", Score: 20})

	if high, _ = store.HighScore(""); high != 30 {
		t.Errorf("Expected overall high score of 30, got %d", high)
	}
	if high, _ = store.HighScore("ana"); high != 20 {
		t.Errorf("Expected ana's high score of 20, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore(ScoreEntry{Score: 2, Length: 7})
	store.SaveScore(ScoreEntry{Score: 4, Length: 9})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.LongestLen != 9 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Score: 1})
	store.SaveScore(ScoreEntry{Score: 2})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
