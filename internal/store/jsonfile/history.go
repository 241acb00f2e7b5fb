// Package jsonfile implements stores backed by JSON files on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/hay-kot/discli/internal/core/history"
)

// historyFile is the root JSON structure stored on disk.
type historyFile struct {
	Entries []history.Entry `json:"entries"`
}

// HistoryStore implements history.Store using a JSON file for persistence.
// Writes hold an exclusive flock so hook commands that call `discli send`
// while a watch is running do not lose entries.
type HistoryStore struct {
	path       string
	maxEntries int
	mu         sync.RWMutex
}

// NewHistoryStore creates a new JSON file history store at the given path.
// maxEntries limits stored entries (0 means unlimited).
func NewHistoryStore(path string, maxEntries int) *HistoryStore {
	return &HistoryStore{path: path, maxEntries: maxEntries}
}

// List returns all history entries, newest first.
func (s *HistoryStore) List(ctx context.Context) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var f historyFile
	err := s.withFileLock(syscall.LOCK_SH, func() error {
		var err error
		f, err = s.load()
		return err
	})
	if err != nil {
		return nil, err
	}

	return f.Entries, nil
}

// Get returns a history entry by ID. Returns ErrNotFound if not found.
func (s *HistoryStore) Get(ctx context.Context, id string) (history.Entry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return history.Entry{}, err
	}

	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}

	return history.Entry{}, history.ErrNotFound
}

// Save adds a new history entry, pruning old entries to stay within maxEntries.
func (s *HistoryStore) Save(ctx context.Context, entry history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(syscall.LOCK_EX, func() error {
		f, err := s.load()
		if err != nil {
			return err
		}

		f.Entries = append([]history.Entry{entry}, f.Entries...)

		if s.maxEntries > 0 && len(f.Entries) > s.maxEntries {
			f.Entries = f.Entries[:s.maxEntries]
		}

		return s.save(f)
	})
}

// Clear removes all history entries.
func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(syscall.LOCK_EX, func() error {
		return s.save(historyFile{Entries: []history.Entry{}})
	})
}

// LastFailed returns the most recent failed entry whose nonce was not later
// delivered. Returns ErrNotFound if none.
func (s *HistoryStore) LastFailed(ctx context.Context) (history.Entry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return history.Entry{}, err
	}

	// Entries are newest first, so a successful resend is seen before the
	// failure it replaced.
	delivered := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.Failed() {
			delivered[entry.Nonce] = struct{}{}
			continue
		}
		if _, ok := delivered[entry.Nonce]; !ok {
			return entry, nil
		}
	}

	return history.Entry{}, history.ErrNotFound
}

// withFileLock acquires a flock on a sibling .lock file, executes fn, then
// releases the lock.
func (s *HistoryStore) withFileLock(lockType int, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	f, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := syscall.Flock(int(f.Fd()), lockType); err != nil {
		return fmt.Errorf("acquire file lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN) //nolint:errcheck

	return fn()
}

// load reads the history file from disk.
// Returns empty historyFile if file doesn't exist.
func (s *HistoryStore) load() (historyFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return historyFile{}, nil
		}
		return historyFile{}, fmt.Errorf("read history file: %w", err)
	}

	if len(data) == 0 {
		return historyFile{}, nil
	}

	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return historyFile{}, fmt.Errorf("history file corrupted (run 'discli history --clear' to reset): %w", err)
	}

	return f, nil
}

// save writes the history file to disk atomically.
func (s *HistoryStore) save(f historyFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename history file: %w", err)
	}

	return nil
}
