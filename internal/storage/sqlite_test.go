package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	runs := []RunRecord{
		{LevelID: "forest", Player: "ana", Score: 100, Ticks: 20000, Seed: 1},
		{LevelID: "forest", Player: "bo", Score: 50, Ticks: 10000, Seed: 2},
		{LevelID: "forest", Player: "ana", Score: 200, Ticks: 40000, Seed: 3, NewHigh: true},
		{LevelID: "other", Player: "cy", Score: 500, Ticks: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	for i, want := range []int{200, 100, 50} {
		if top[i].Score != want {
			t.Errorf("run %d score = %d, expected %d", i, top[i].Score, want)
		}
	}
	if !top[0].NewHigh || top[0].Player != "ana" || top[0].Seed != 3 || top[0].Ticks != 40000 {
		t.Errorf("best run fields not round-tripped: %+v", top[0])
	}
	if top[1].NewHigh {
		t.Error("new_high flag leaked into another run")
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}

	limited, err := store.TopRuns("forest", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: %d runs", len(limited))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("forest")
	if err != nil {
		t.Fatal(err)
	}
	if best != 0 {
		t.Errorf("empty level best = %d", best)
	}

	store.SaveRun(RunRecord{LevelID: "forest", Score: 7})
	store.SaveRun(RunRecord{LevelID: "forest", Score: 31})
	best, err = store.BestScore("forest")
	if err != nil || best != 31 {
		t.Errorf("best = %d, %v", best, err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("forest")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(RunRecord{LevelID: "forest", Score: 10, Ticks: 100})
	store.SaveRun(RunRecord{LevelID: "forest", Score: 30, Ticks: 300})

	stats, err = store.Stats("forest")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 2 || stats.BestScore != 30 || stats.AvgScore != 20 || stats.TotalTicks != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(RunRecord{LevelID: "forest", Score: 10})
	store.SaveRun(RunRecord{LevelID: "other", Score: 10})

	if err := store.ClearRuns("forest"); err != nil {
		t.Fatal(err)
	}
	if runs, _ := store.TopRuns("forest", 10); len(runs) != 0 {
		t.Errorf("forest runs left: %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("other level must be untouched")
	}
}

func TestStoreKeepsTickRate(t *testing.T) {
	store := openTestStore(t)

	// Same tick count, played at 30 and 60 ticks per second.
	store.SaveRun(RunRecord{LevelID: "forest", Score: 20, Ticks: 1800, TickRate: 30})
	store.SaveRun(RunRecord{LevelID: "forest", Score: 10, Ticks: 1800})

	runs, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs", len(runs))
	}

	tests := []struct {
		rate int
		want time.Duration
	}{
		{30, time.Minute},
		{DefaultTickRate, 30 * time.Second},
	}
	for i, tt := range tests {
		if runs[i].TickRate != tt.rate {
			t.Errorf("run %d tick rate = %d, expected %d", i, runs[i].TickRate, tt.rate)
		}
		if got := runs[i].Duration(); got != tt.want {
			t.Errorf("run %d duration = %v, expected %v", i, got, tt.want)
		}
	}

	stats, err := store.Stats("forest")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalPlayed != 90*time.Second {
		t.Errorf("total played = %v, expected 1m30s", stats.TotalPlayed)
	}
}

func TestOpenAddsTickRateToOldDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			new_high INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO runs (level_id, score, ticks) VALUES ('forest', 5, 120);
	`)
	if err != nil {
		t.Fatalf("seeding old schema: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	runs, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].TickRate != DefaultTickRate || runs[0].Duration() != 2*time.Second {
		t.Errorf("old run = %+v", runs)
	}
}
