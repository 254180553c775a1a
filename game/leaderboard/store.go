package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the board as a JSON array on disk
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns no entries when the file does not exist yet
func (fs *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse leaderboard %s: %w", fs.Path, err)
	}
	return entries, nil
}

// Save replaces the file atomically
func (fs *FileStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create leaderboard directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close leaderboard: %w", err)
	}
	return os.Rename(tmp.Name(), fs.Path)
}

// MemoryStore keeps entries in process, used for training runs and tests
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	Err     error // Returned by Load and Save when set
}

func (ms *MemoryStore) Load() ([]Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.Err != nil {
		return nil, ms.Err
	}
	return append([]Entry(nil), ms.entries...), nil
}

func (ms *MemoryStore) Save(entries []Entry) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.Err != nil {
		return ms.Err
	}
	ms.entries = append([]Entry(nil), entries...)
	return nil
}
