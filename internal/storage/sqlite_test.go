package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/consolekit/internal/adt"
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTemp(t)

	values := []adt.Value{adt.StringValue("first"), adt.IntValue(42), adt.StringValue("third")}
	for _, v := range values {
		if _, err := store.SaveEntry("notes", v); err != nil {
			t.Fatalf("SaveEntry() failed: %v", err)
		}
	}
	if _, err := store.SaveEntry("name", adt.StringValue("ada")); err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	entries, err := store.Recent("notes", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Newest first
	if entries[0].Text != "third" || entries[2].Text != "first" {
		t.Errorf("Entries not newest first: %+v", entries)
	}
	if entries[1].Type != adt.TypeInt || entries[1].Number != 42 {
		t.Errorf("Expected int entry 42, got %+v", entries[1])
	}
	if v := entries[1].Value(); v.Type != adt.TypeInt || v.Data != 42 {
		t.Errorf("Value() = %+v", v)
	}

	all, err := store.Recent("", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 entries across windows, got %d", len(all))
	}

	limited, _ := store.Recent("notes", 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 entries with limit, got %d", len(limited))
	}
}

func TestStoreRejectsMismatchedValue(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveEntry("notes", adt.Value{Type: adt.TypeInt, Data: "x"}); err == nil {
		t.Error("Expected error for int value holding a string")
	}
}

func TestStoreSink(t *testing.T) {
	store := openTemp(t)
	sink := store.Sink("name")

	if err := sink.Put(adt.StringValue("grace")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	entries, err := store.Recent("name", 1)
	if err != nil || len(entries) != 1 || entries[0].Text != "grace" || entries[0].Window != "name" {
		t.Errorf("Recent() = %+v, %v", entries, err)
	}
}

func TestStoreWindowsAndClear(t *testing.T) {
	store := openTemp(t)
	store.SaveEntry("b", adt.StringValue("1"))
	store.SaveEntry("a", adt.StringValue("2"))
	store.SaveEntry("b", adt.StringValue("3"))

	windows, err := store.Windows()
	if err != nil {
		t.Fatalf("Windows() failed: %v", err)
	}
	if len(windows) != 2 || windows[0].Window != "a" || windows[1].Count != 2 {
		t.Errorf("Windows() = %+v", windows)
	}

	if err := store.ClearWindow("b"); err != nil {
		t.Fatalf("ClearWindow() failed: %v", err)
	}
	entries, _ := store.Recent("b", 10)
	if len(entries) != 0 {
		t.Errorf("Expected no entries after clear, got %d", len(entries))
	}
}
