package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshd/internal/api"
)

func sampleStatus() api.UpdateStatus {
	now := time.Now().Truncate(time.Second)
	return api.UpdateStatus{
		CurrentVersion: "2.0.0-alpha.90",
		LatestVersion:  "2.0.0-alpha.90",
		LastCheck:      &now,
		NewFeatures:    []string{"swarm", "agent"},
		CycleID:        "test-cycle",
	}
}

func TestPersistAndLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), ".freshd"))
	status := sampleStatus()

	require.NoError(t, s.Persist(status))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, status.CurrentVersion, loaded.CurrentVersion)
	assert.Equal(t, status.NewFeatures, loaded.NewFeatures)
	assert.Equal(t, status.CycleID, loaded.CycleID)
	require.NotNil(t, loaded.LastCheck)
	assert.True(t, status.LastCheck.Equal(*loaded.LastCheck))
}

func TestPersistCreatesStateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".freshd")
	s := New(dir)

	require.NoError(t, s.Persist(sampleStatus()))

	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestPersistedContentMatchesInMemoryStatus(t *testing.T) {
	s := New(t.TempDir())
	status := sampleStatus()
	require.NoError(t, s.Persist(status))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var onDisk api.UpdateStatus
	require.NoError(t, json.Unmarshal(data, &onDisk))

	expected, err := json.Marshal(status)
	require.NoError(t, err)
	actual, err := json.Marshal(onDisk)
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(actual))
}

func TestPersistLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Persist(sampleStatus()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SnapshotFileName, entries[0].Name())
}

func TestLoadMissingSnapshot(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Load()
	assert.Error(t, err)
}

func TestDefaultStateDir(t *testing.T) {
	s := New("")
	assert.Equal(t, DefaultStateDir, s.StateDir())
	assert.Equal(t, filepath.Join(DefaultStateDir, SnapshotFileName), s.Path())
}

func TestWatcherRestoresRemovedSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Persist(sampleStatus()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(s)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to establish the watch, then remove the
	// snapshot out-of-band.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Remove(s.Path()))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(s.Path())
		return err == nil
	}, 2*time.Second, 20*time.Millisecond, "watcher should restore the snapshot")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
