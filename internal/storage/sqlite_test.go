package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	want := RunRecord{
		Seed:      3500000000,
		Source:    "ssh",
		Player:    "alice",
		Revealed:  120,
		Grown:     80,
		Corrupted: 44,
		Tiles:     9,
		Regions:   2,
		Duration:  95 * time.Second,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() returned id %d", id)
	}

	runs, err := store.RunsForSeed(want.Seed)
	if err != nil {
		t.Fatalf("RunsForSeed() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTemp(t)

	for i, revealed := range []int{50, 300, 100, 500, 400} {
		if _, err := store.SaveRun(RunRecord{Seed: uint32(i), Source: "play", Revealed: revealed}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Revealed != 500 || runs[1].Revealed != 400 || runs[2].Revealed != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limits fall back to ten
	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(all))
	}
}

func TestStoreRunsForSeed(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(RunRecord{Seed: 7, Source: "play", Revealed: 1})
	store.SaveRun(RunRecord{Seed: 8, Source: "play", Revealed: 2})
	store.SaveRun(RunRecord{Seed: 7, Source: "sim", Revealed: 3})

	runs, err := store.RunsForSeed(7)
	if err != nil {
		t.Fatalf("RunsForSeed() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for seed 7, got %d", len(runs))
	}
	// Newest first
	if runs[0].Source != "sim" || runs[1].Source != "play" {
		t.Errorf("unexpected order: %v", runs)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run in an empty log, got %+v", best)
	}

	store.SaveRun(RunRecord{Seed: 1, Source: "play", Revealed: 100})
	store.SaveRun(RunRecord{Seed: 2, Source: "play", Revealed: 300})
	store.SaveRun(RunRecord{Seed: 3, Source: "play", Revealed: 200})

	best, err = store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Seed != 2 {
		t.Errorf("Expected seed 2 as best run, got %+v", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(RunRecord{Seed: 1, Source: "play", Revealed: 100})
	store.SaveRun(RunRecord{Seed: 2, Source: "play", Revealed: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty summary: %+v", empty)
	}

	store.SaveRun(RunRecord{Seed: 1, Source: "play", Revealed: 100, Grown: 10})
	store.SaveRun(RunRecord{Seed: 2, Source: "play", Revealed: 300, Grown: 30})

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 2 || sum.BestRevealed != 300 || sum.AvgRevealed != 200 || sum.TotalGrown != 40 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}
