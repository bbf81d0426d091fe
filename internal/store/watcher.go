package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"freshd/pkg/logging"
)

// Watcher observes the state directory and restores the status snapshot when
// it is removed or renamed away out-of-band. External readers poll the file,
// so a missing snapshot looks like a dead daemon; re-persisting the last
// record keeps the on-disk view consistent with the in-memory one.
type Watcher struct {
	store *Store
}

// NewWatcher creates a Watcher for the given store.
func NewWatcher(store *Store) *Watcher {
	return &Watcher{store: store}
}

// Run watches the state directory until the context is cancelled. The state
// directory must exist before Run is called; Persist creates it.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.store.StateDir(), 0o755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.store.StateDir()); err != nil {
		return err
	}

	logging.Info("StoreWatcher", "Watching %s for snapshot removal", w.store.StateDir())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.isSnapshotRemoval(event) {
				continue
			}
			last := w.store.lastPersisted()
			if last == nil {
				continue
			}
			logging.Warn("StoreWatcher", "Snapshot removed out-of-band, restoring")
			if err := w.store.Persist(*last); err != nil {
				logging.Error("StoreWatcher", err, "Failed to restore snapshot")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("StoreWatcher", "Watch error: %v", err)
		}
	}
}

// isSnapshotRemoval reports whether the event removed the snapshot file.
func (w *Watcher) isSnapshotRemoval(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != SnapshotFileName {
		return false
	}
	return event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}
