package datastore

import (
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestFileStoreAutoInitializesMissingCollection(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	var docs []testDoc
	if err := store.Load("requests", &docs); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected empty collection, got %d documents", len(docs))
	}

	// First access must have created the backing file.
	if _, err := os.Stat(filepath.Join(store.dir, "requests.json")); err != nil {
		t.Fatalf("collection file was not initialized: %v", err)
	}
}

func TestFileStoreSaveThenLoadRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	in := []testDoc{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	if err := store.Save("batches", in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	var out []testDoc
	if err := store.Load("batches", &out); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Value != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestFileStoreTreatsCorruptFileAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}

	var docs []testDoc
	if err := store.Load("users", &docs); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected corrupt collection to read as empty, got %d documents", len(docs))
	}
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if err := store.Save("timeline", []testDoc{{ID: "x"}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "timeline.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}
