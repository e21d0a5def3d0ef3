package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileState is the on-disk layout of a FileStore.
type fileState struct {
	Visitors    map[string]map[string]bool `json:"visitors"`
	LastUpdated time.Time                  `json:"last_updated"`
}

// FileStore keeps progress in a single JSON file.
type FileStore struct {
	path string

	mu    sync.Mutex
	state fileState
}

// OpenFileStore loads the JSON file at path. A missing file starts empty.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path:  path,
		state: fileState{Visitors: map[string]map[string]bool{}},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	if err := json.Unmarshal(data, &fs.state); err != nil {
		return nil, fmt.Errorf("failed to parse progress file: %w", err)
	}
	if fs.state.Visitors == nil {
		fs.state.Visitors = map[string]map[string]bool{}
	}

	return fs, nil
}

// Completed implements Store.
func (fs *FileStore) Completed(visitor, key string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.state.Visitors[visitor][key], nil
}

// Toggle implements Store.
func (fs *FileStore) Toggle(visitor, key string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	done := !fs.state.Visitors[visitor][key]
	if err := fs.setLocked(visitor, key, done); err != nil {
		return false, err
	}
	return done, nil
}

// Set implements Store.
func (fs *FileStore) Set(visitor, key string, done bool) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.setLocked(visitor, key, done)
}

func (fs *FileStore) setLocked(visitor, key string, done bool) error {
	items := fs.state.Visitors[visitor]
	if items == nil {
		items = map[string]bool{}
		fs.state.Visitors[visitor] = items
	}

	prev, had := items[key]
	if done {
		items[key] = true
	} else {
		delete(items, key)
	}

	if err := fs.saveLocked(); err != nil {
		// keep memory consistent with disk
		if had {
			items[key] = prev
		} else {
			delete(items, key)
		}
		return err
	}
	return nil
}

// All implements Store.
func (fs *FileStore) All(visitor string) (map[string]bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	out := make(map[string]bool, len(fs.state.Visitors[visitor]))
	for k, v := range fs.state.Visitors[visitor] {
		if v {
			out[k] = true
		}
	}
	return out, nil
}

// Reset implements Store.
func (fs *FileStore) Reset(visitor string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	items, ok := fs.state.Visitors[visitor]
	if !ok {
		return nil
	}
	delete(fs.state.Visitors, visitor)

	if err := fs.saveLocked(); err != nil {
		fs.state.Visitors[visitor] = items
		return err
	}
	return nil
}

// Close implements Store. Every mutation is already on disk.
func (fs *FileStore) Close() error {
	return nil
}

// saveLocked writes the state through a temporary file so a crash never
// leaves a truncated file behind.
func (fs *FileStore) saveLocked() error {
	fs.state.LastUpdated = time.Now()

	data, err := json.MarshalIndent(fs.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create progress directory %s: %w", dir, err)
		}
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write progress file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace progress file: %w", err)
	}

	return nil
}
