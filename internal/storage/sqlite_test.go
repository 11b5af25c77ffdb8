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

// saveScore stores a bare run for game with the given score.
func saveScore(t *testing.T, store *Store, game string, score int) {
	t.Helper()
	if _, err := store.SaveRun(RunRecord{RunID: NewRunID(), GameID: game, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRunIdempotent(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{
		RunID:        NewRunID(),
		GameID:       "gravity",
		Player:       "alice",
		Character:    "cat",
		Preset:       "normal",
		Score:        17,
		PeakSpeed:    1070,
		DurationSecs: 42.5,
	}

	saved, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if !saved {
		t.Error("first SaveRun should store the run")
	}

	// A second game-over path submitting the same run must not duplicate it.
	run.Score = 99
	saved, err = store.SaveRun(run)
	if err != nil {
		t.Fatalf("second SaveRun() failed: %v", err)
	}
	if saved {
		t.Error("second SaveRun with the same run id should be ignored")
	}

	runs, err := store.AllRuns("gravity")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Score != 17 || got.Player != "alice" || got.Character != "cat" || got.Preset != "normal" {
		t.Errorf("stored run = %+v, expected the first submission", got)
	}
	if got.PeakSpeed != 1070 || got.DurationSecs != 42.5 {
		t.Errorf("stored speed/duration = %v/%v", got.PeakSpeed, got.DurationSecs)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRunRequiresID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{GameID: "gravity", Score: 3}); err == nil {
		t.Error("SaveRun without a run id should fail")
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id := NewRunID()
	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "gravity", Score: 5}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 5 {
		t.Errorf("RunByID() = %+v, expected score 5", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID(missing) failed: %v", err)
	}
	if missing != nil {
		t.Error("RunByID for an unknown id should return nil")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "gravity", (i+1)*10)
	}
	saveScore(t, store, "other", 1000)

	runs, err := store.TopRuns("gravity", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	def, err := store.TopRuns("gravity", 0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(def) != 5 {
		t.Errorf("Default limit should return all 5 runs, got %d", len(def))
	}
}

func TestStoreTopRunsTieOrder(t *testing.T) {
	store := openTestStore(t)

	first := NewRunID()
	second := NewRunID()
	store.SaveRun(RunRecord{RunID: first, GameID: "gravity", Score: 8})
	store.SaveRun(RunRecord{RunID: second, GameID: "gravity", Score: 8})

	runs, err := store.TopRuns("gravity", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].RunID != first {
		t.Errorf("earlier run should rank first on ties, got %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("gravity")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "gravity", 10)
	saveScore(t, store, "gravity", 30)
	saveScore(t, store, "gravity", 20)

	high, err = store.HighScore("gravity")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "gravity", 100)
	saveScore(t, store, "gravity", 200)
	saveScore(t, store, "other", 300)

	if err := store.ClearRuns("gravity"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("gravity", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("gravity")
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{RunID: NewRunID(), GameID: "gravity", Score: 10, PeakSpeed: 720, DurationSecs: 20})
	store.SaveRun(RunRecord{RunID: NewRunID(), GameID: "gravity", Score: 20, PeakSpeed: 1220, DurationSecs: 40})

	stats, err := store.Stats("gravity")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.PeakSpeed != 1220 || stats.TotalTime != 60 {
		t.Errorf("speed/time stats = %v/%v", stats.PeakSpeed, stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
