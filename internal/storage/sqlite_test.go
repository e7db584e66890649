package storage

import (
	"errors"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsProgress(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.CompleteLevel(DefaultPlayer, 1, 2, 2, 5); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	stars, err := store.BestStars(DefaultPlayer, 1)
	if err != nil {
		t.Fatalf("BestStars() failed: %v", err)
	}
	if stars != 2 {
		t.Errorf("expected 2 stars after reopen, got %d", stars)
	}
}

func TestStoreUnlockProgression(t *testing.T) {
	store := openTestStore(t)

	unlocked, err := store.UnlockedLevel(DefaultPlayer)
	if err != nil {
		t.Fatalf("UnlockedLevel() failed: %v", err)
	}
	if unlocked != 1 {
		t.Errorf("fresh player should have level 1 unlocked, got %d", unlocked)
	}

	if ok, _ := store.IsUnlocked(DefaultPlayer, 2); ok {
		t.Error("level 2 should be locked")
	}

	if err := store.CompleteLevel(DefaultPlayer, 1, 2, 3, 3); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	if ok, _ := store.IsUnlocked(DefaultPlayer, 2); !ok {
		t.Error("level 2 should be unlocked after completing level 1")
	}

	// Replaying an earlier level never lowers the unlock.
	if err := store.CompleteLevel(DefaultPlayer, 3, 4, 1, 9); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	if err := store.CompleteLevel(DefaultPlayer, 1, 2, 1, 8); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	unlocked, _ = store.UnlockedLevel(DefaultPlayer)
	if unlocked != 4 {
		t.Errorf("expected unlocked level 4, got %d", unlocked)
	}
}

func TestStoreUnlockSparseIDs(t *testing.T) {
	store := openTestStore(t)

	// Level ids 1, 5, 9: solving 1 opens 5, not 2.
	if err := store.CompleteLevel(DefaultPlayer, 1, 5, 3, 3); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}
	if ok, _ := store.IsUnlocked(DefaultPlayer, 5); !ok {
		t.Error("level 5 should be unlocked after completing level 1")
	}
	if ok, _ := store.IsUnlocked(DefaultPlayer, 9); ok {
		t.Error("level 9 should still be locked")
	}
}

func TestStoreKeepsBestResult(t *testing.T) {
	store := openTestStore(t)

	results := []struct{ stars, steps int }{
		{2, 6},
		{3, 3},
		{1, 10},
	}
	for _, r := range results {
		if err := store.CompleteLevel(DefaultPlayer, 5, 6, r.stars, r.steps); err != nil {
			t.Fatalf("CompleteLevel() failed: %v", err)
		}
	}

	p, err := store.Progress(DefaultPlayer, 5)
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if p.BestStars != 3 {
		t.Errorf("expected best stars 3, got %d", p.BestStars)
	}
	if p.BestSteps != 3 {
		t.Errorf("expected best steps 3, got %d", p.BestSteps)
	}
	if p.Completions != 3 {
		t.Errorf("expected 3 completions, got %d", p.Completions)
	}
}

func TestStoreNoProgress(t *testing.T) {
	store := openTestStore(t)

	_, err := store.BestStars(DefaultPlayer, 7)
	if !errors.Is(err, ErrNoProgress) {
		t.Errorf("expected ErrNoProgress, got %v", err)
	}
}

func TestStorePlayersAreIsolated(t *testing.T) {
	store := openTestStore(t)

	if err := store.CompleteLevel("alice", 1, 2, 3, 3); err != nil {
		t.Fatalf("CompleteLevel() failed: %v", err)
	}

	if _, err := store.BestStars("bob", 1); !errors.Is(err, ErrNoProgress) {
		t.Errorf("bob should have no progress, got %v", err)
	}
	unlocked, _ := store.UnlockedLevel("bob")
	if unlocked != 1 {
		t.Errorf("bob should only have level 1, got %d", unlocked)
	}
}

func TestStoreAttempts(t *testing.T) {
	store := openTestStore(t)

	attempts := []Attempt{
		{Player: DefaultPlayer, LevelID: 2, Steps: 4},
		{Player: DefaultPlayer, LevelID: 2, Steps: 3, Stars: 3, Solved: true},
		{Player: DefaultPlayer, LevelID: 3, Steps: 9},
	}
	for _, a := range attempts {
		if _, err := store.RecordAttempt(a); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	got, err := store.Attempts(DefaultPlayer, 2, 0)
	if err != nil {
		t.Fatalf("Attempts() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(got))
	}
	// Newest first
	if !got[0].Solved || got[0].Stars != 3 {
		t.Errorf("expected solved attempt first, got %+v", got[0])
	}
	if got[1].Solved {
		t.Errorf("expected unsolved attempt second, got %+v", got[1])
	}

	limited, _ := store.Attempts(DefaultPlayer, 2, 1)
	if len(limited) != 1 {
		t.Errorf("expected limit 1 to return 1 attempt, got %d", len(limited))
	}
}

func TestStoreAllProgressAndReset(t *testing.T) {
	store := openTestStore(t)

	store.CompleteLevel(DefaultPlayer, 1, 2, 3, 3)
	store.CompleteLevel(DefaultPlayer, 2, 3, 2, 5)
	store.CompleteLevel("other", 1, 2, 1, 9)
	store.RecordAttempt(Attempt{Player: DefaultPlayer, LevelID: 1, Steps: 3, Stars: 3, Solved: true})

	all, err := store.AllProgress(DefaultPlayer)
	if err != nil {
		t.Fatalf("AllProgress() failed: %v", err)
	}
	if len(all) != 2 || all[1].BestStars != 3 || all[2].BestStars != 2 {
		t.Errorf("unexpected progress %+v", all)
	}

	total, _ := store.TotalStars(DefaultPlayer)
	if total != 5 {
		t.Errorf("expected 5 total stars, got %d", total)
	}

	if err := store.Reset(DefaultPlayer); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	all, _ = store.AllProgress(DefaultPlayer)
	if len(all) != 0 {
		t.Errorf("expected no progress after reset, got %d entries", len(all))
	}
	attempts, _ := store.Attempts(DefaultPlayer, 1, 0)
	if len(attempts) != 0 {
		t.Errorf("expected no attempts after reset, got %d", len(attempts))
	}
	unlocked, _ := store.UnlockedLevel(DefaultPlayer)
	if unlocked != 1 {
		t.Errorf("expected level 1 after reset, got %d", unlocked)
	}

	if _, err := store.BestStars("other", 1); err != nil {
		t.Errorf("reset should not touch other players: %v", err)
	}
}
