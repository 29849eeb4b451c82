package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/treasure"
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

func saveGame(t *testing.T, store *Store, size, attempts int, outcome treasure.State) string {
	t.Helper()
	id := NewGameID()
	err := store.SaveGame(GameRecord{
		ID:          id,
		Size:        size,
		MaxAttempts: core.MaxAttempts(size),
		Attempts:    attempts,
		Outcome:     outcome,
		Target:      core.NewCoord(1, 1),
	})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	return id
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

func TestStoreSaveAndFetchGame(t *testing.T) {
	store := openTestStore(t)

	id := NewGameID()
	want := GameRecord{
		ID:          id,
		Size:        10,
		MaxAttempts: 15,
		Attempts:    4,
		Outcome:     treasure.StateWon,
		Target:      core.NewCoord(3, 7),
	}
	if err := store.SaveGame(want); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.Game(id)
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Game() returned nil for a saved game")
	}
	if got.Size != want.Size || got.Attempts != want.Attempts ||
		got.Outcome != want.Outcome || got.Target != want.Target {
		t.Errorf("Game() = %+v, want %+v", got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	missing, err := store.Game("no-such-game")
	if err != nil || missing != nil {
		t.Errorf("Game(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreSaveGameRequiresID(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveGame(GameRecord{Size: 10}); err == nil {
		t.Error("SaveGame() should reject a record without ID")
	}
}

func TestStoreBestGames(t *testing.T) {
	store := openTestStore(t)

	saveGame(t, store, 10, 9, treasure.StateWon)
	saveGame(t, store, 10, 3, treasure.StateWon)
	saveGame(t, store, 10, 15, treasure.StateLost)
	saveGame(t, store, 10, 6, treasure.StateWon)
	saveGame(t, store, 5, 1, treasure.StateWon)

	best, err := store.BestGames(10, 10)
	if err != nil {
		t.Fatalf("BestGames() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 won games on size 10, got %d", len(best))
	}
	if best[0].Attempts != 3 || best[1].Attempts != 6 || best[2].Attempts != 9 {
		t.Errorf("Games not ordered by attempts: %v", best)
	}

	all, err := store.BestGames(0, 2)
	if err != nil {
		t.Fatalf("BestGames(0) failed: %v", err)
	}
	if len(all) != 2 || all[0].Attempts != 1 || all[0].Size != 5 {
		t.Errorf("BestGames(0, 2) = %v", all)
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	first := saveGame(t, store, 10, 2, treasure.StateWon)
	last := saveGame(t, store, 6, 11, treasure.StateLost)

	recent, err := store.RecentGames(0, 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(recent))
	}
	if recent[0].ID != last || recent[1].ID != first {
		t.Errorf("RecentGames() order = %s, %s", recent[0].ID, recent[1].ID)
	}
}

func TestStoreRecentGamesBySize(t *testing.T) {
	store := openTestStore(t)

	var tens []string
	for i := 0; i < 3; i++ {
		tens = append(tens, saveGame(t, store, 10, 4, treasure.StateWon))
		saveGame(t, store, 6, 2, treasure.StateWon)
		saveGame(t, store, 6, 3, treasure.StateLost)
	}

	recent, err := store.RecentGames(10, 2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 games of size 10, got %d", len(recent))
	}
	if recent[0].ID != tens[2] || recent[1].ID != tens[1] {
		t.Errorf("RecentGames(10, 2) = %s, %s", recent[0].ID, recent[1].ID)
	}
	for _, g := range recent {
		if g.Size != 10 {
			t.Errorf("RecentGames(10, 2) returned size %d", g.Size)
		}
	}
}

func TestGameRecordResult(t *testing.T) {
	tests := []struct {
		outcome treasure.State
		want    string
	}{
		{treasure.StateWon, "won"},
		{treasure.StateLost, "lost"},
		{treasure.StatePlaying, "abandoned"},
	}

	for _, tt := range tests {
		if got := (GameRecord{Outcome: tt.outcome}).Result(); got != tt.want {
			t.Errorf("Result() for %v = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats(0)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Played != 0 || empty.BestAttempts != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	saveGame(t, store, 10, 5, treasure.StateWon)
	saveGame(t, store, 10, 15, treasure.StateLost)
	saveGame(t, store, 10, 2, treasure.StatePlaying)
	saveGame(t, store, 7, 3, treasure.StateWon)

	stats, err := store.Stats(10)
	if err != nil {
		t.Fatalf("Stats(10) failed: %v", err)
	}
	if stats.Played != 3 || stats.Won != 1 || stats.Lost != 1 || stats.Abandoned != 1 {
		t.Errorf("Stats(10) = %+v", stats)
	}
	if stats.BestAttempts != 5 {
		t.Errorf("BestAttempts = %d, want 5", stats.BestAttempts)
	}

	all, _ := store.Stats(0)
	if all.Played != 4 || all.Won != 2 || all.BestAttempts != 3 {
		t.Errorf("Stats(0) = %+v", all)
	}
}

func TestRecordFromSession(t *testing.T) {
	b, _ := treasure.NewBoardAt(6, core.NewCoord(2, 3))
	s := treasure.NewSessionWithBoard(b, nil)
	s.Submit(2, 3)

	rec := RecordFromSession("g1", s)
	if rec.ID != "g1" || rec.Size != 6 || rec.MaxAttempts != 11 ||
		rec.Attempts != 1 || rec.Outcome != treasure.StateWon || rec.Target != core.NewCoord(2, 3) {
		t.Errorf("RecordFromSession() = %+v", rec)
	}
}
