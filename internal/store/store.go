package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"freshd/internal/api"
	"freshd/pkg/logging"
)

// SnapshotFileName is the well-known name of the status snapshot inside the
// state directory.
const SnapshotFileName = "update-status.json"

// DefaultStateDir is the dot-prefixed state directory used when the
// configuration does not name one.
const DefaultStateDir = ".freshd"

// Store writes UpdateStatus snapshots to the state directory and remembers
// the last record it wrote so the watcher can restore a removed file.
type Store struct {
	mu       sync.Mutex
	stateDir string
	last     *api.UpdateStatus
}

// New creates a Store rooted at stateDir. An empty stateDir selects
// DefaultStateDir relative to the working directory.
func New(stateDir string) *Store {
	if stateDir == "" {
		stateDir = DefaultStateDir
	}
	return &Store{stateDir: stateDir}
}

// Path returns the full snapshot file path.
func (s *Store) Path() string {
	return filepath.Join(s.stateDir, SnapshotFileName)
}

// StateDir returns the state directory the store writes into.
func (s *Store) StateDir() string {
	return s.stateDir
}

// Persist serializes the status to the snapshot file, creating the state
// directory if absent. The write goes through a temp file and rename so a
// concurrent reader never observes partial JSON.
func (s *Store) Persist(status api.UpdateStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.stateDir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", s.stateDir, err)
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize status: %w", err)
	}

	tmp, err := os.CreateTemp(s.stateDir, SnapshotFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	statusCopy := status
	s.last = &statusCopy
	logging.Debug("Store", "Persisted snapshot to %s", s.Path())
	return nil
}

// Load reads the snapshot from disk. Used by CLI commands inspecting the
// state of a daemon that is not currently reachable.
func (s *Store) Load() (api.UpdateStatus, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return api.UpdateStatus{}, fmt.Errorf("failed to read snapshot %s: %w", s.Path(), err)
	}

	var status api.UpdateStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return api.UpdateStatus{}, fmt.Errorf("failed to parse snapshot %s: %w", s.Path(), err)
	}
	return status, nil
}

// lastPersisted returns the most recent successfully written record.
func (s *Store) lastPersisted() *api.UpdateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	statusCopy := *s.last
	return &statusCopy
}
