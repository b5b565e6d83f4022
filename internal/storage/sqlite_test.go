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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []Result{
		{Level: 4, Tier: "medium", Score: 350, HintsUsed: 1, Expression: "sqrt(x + 1)"},
		{Level: 2, Tier: "easy", Score: 100, HintsUsed: 0, Expression: "cos(x)"},
		{Level: 11, Tier: "expert", Score: 2100, HintsUsed: 3, Expression: "sinh(x / 2)"},
	}
	for _, r := range sessions {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopResults() returned %d rows, want 3", len(top))
	}

	// Sorted by score descending.
	if top[0].Score != 2100 || top[1].Score != 350 || top[2].Score != 100 {
		t.Errorf("TopResults() order = %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Tier != "expert" || top[0].Level != 11 {
		t.Errorf("TopResults()[0] = %+v, want the expert run", top[0])
	}
	if top[0].Expression != "sinh(x / 2)" {
		t.Errorf("TopResults()[0].Expression = %q", top[0].Expression)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveResult(Result{Level: i, Tier: "easy", Score: i * 100}); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.TopResults(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("TopResults(2) returned %d rows", len(top))
	}
}

func TestStoreHighScoreAndBestLevel(t *testing.T) {
	store := openTestStore(t)

	// Empty store reports zeros, not errors.
	if hs, err := store.HighScore(); err != nil || hs != 0 {
		t.Errorf("HighScore() on empty store = (%d, %v), want (0, nil)", hs, err)
	}
	if bl, err := store.BestLevel(); err != nil || bl != 0 {
		t.Errorf("BestLevel() on empty store = (%d, %v), want (0, nil)", bl, err)
	}

	store.SaveResult(Result{Level: 3, Tier: "easy", Score: 250})
	store.SaveResult(Result{Level: 8, Tier: "hard", Score: 150})

	if hs, _ := store.HighScore(); hs != 250 {
		t.Errorf("HighScore() = %d, want 250", hs)
	}
	if bl, _ := store.BestLevel(); bl != 8 {
		t.Errorf("BestLevel() = %d, want 8", bl)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Level: 1, Tier: "easy", Score: 100})
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("TopResults() after clear returned %d rows", len(top))
	}
}
