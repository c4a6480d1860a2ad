package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func saveScore(t *testing.T, store *Store, gameID string, score int) string {
	t.Helper()
	id, err := store.SaveRun(Run{GameID: gameID, Score: score})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "rush", Score: 1620, Victory: true, Ticks: 3600, Seed: -42, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q", id)
	}

	run, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if run.Score != 1620 || !run.Victory || run.Ticks != 3600 || run.Seed != -42 || run.Difficulty != "hard" {
		t.Errorf("Run() = %+v", run)
	}
	if run.HasReplay {
		t.Error("run without replay reported HasReplay")
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		if _, err := store.Run(id); !errors.Is(err, ErrRunNotFound) {
			t.Errorf("Run(%q) error = %v, expected ErrRunNotFound", id, err)
		}
	}
	if _, err := store.Replay(uuid.NewString()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Replay() of unknown run = %v", err)
	}
	if err := store.SaveReplay(uuid.NewString(), []byte{1}); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("SaveReplay() for unknown run = %v", err)
	}
}

func TestStoreReplay(t *testing.T) {
	store := openTestStore(t)
	id := saveScore(t, store, "rush", 300)

	data := []byte{0x28, 0xb5, 0x2f, 0xfd, 0, 1, 2}
	if err := store.SaveReplay(id, data); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Replay() = %x, expected %x", got, data)
	}

	run, _ := store.Run(id)
	if !run.HasReplay {
		t.Error("HasReplay should be set after SaveReplay")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "rush", 100)
	saveScore(t, store, "rush", 50)
	saveScore(t, store, "rush", 200)
	saveScore(t, store, "rush_classic", 500)

	scores, err := store.TopScores("rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}

	top, _ := store.TopScores("rush", 2)
	if len(top) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(top))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "rush", 100)
	saveScore(t, store, "rush", 300)
	saveScore(t, store, "rush", 200)

	if high, _ = store.HighScore("rush"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	id := saveScore(t, store, "rush", 100)
	if err := store.SaveReplay(id, []byte("x")); err != nil {
		t.Fatal(err)
	}
	saveScore(t, store, "rush", 200)
	saveScore(t, store, "rush_timed", 300)

	if err := store.ClearScores("rush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("rush", 10); len(scores) != 0 {
		t.Errorf("Expected 0 rush scores after clear, got %d", len(scores))
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("replay should be cleared with its run, got %v", err)
	}
	if scores, _ := store.TopScores("rush_timed", 10); len(scores) != 1 {
		t.Error("rush_timed scores should not be affected by clearing rush")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "rush", Score: 1600, Victory: true})
	store.SaveRun(Run{GameID: "rush", Score: 400})
	store.SaveRun(Run{GameID: "rush_classic", Score: 90})

	stats, err := store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Victories != 1 || stats.HighScore != 1600 || stats.AvgScore != 1000 || stats.TotalScore != 2000 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["rush_classic"].HighScore != 90 {
		t.Errorf("all stats = %+v", all)
	}
}
