package datastore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each collection in <dir>/<collection>.json as a pretty
// printed JSON array, the layout the legacy system used. Writes go to a
// temp file in the same directory and are renamed over the target.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads a collection into out. A missing collection is initialized to
// an empty array on first access; an unreadable one is treated as empty so
// a damaged file never takes the whole system down.
func (s *FileStore) Load(collection string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(collection)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if initErr := s.writeAtomic(path, []byte("[]")); initErr != nil {
			return initErr
		}
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	if len(data) == 0 {
		data = []byte("[]")
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Warning: collection %s is unreadable, treating as empty: %v", collection, err)
		return json.Unmarshal([]byte("[]"), out)
	}
	return nil
}

// Save atomically replaces the whole collection.
func (s *FileStore) Save(collection string, docs interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}
	return s.writeAtomic(s.path(collection), data)
}

func (s *FileStore) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
