package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	"freshd/internal/api"
	"freshd/internal/toolclient"
	"freshd/pkg/logging"
)

// Reconciler owns the process-wide UpdateStatus record and runs
// reconciliation cycles against it. It is constructed once during bootstrap
// and passed to its consumers explicitly; there is no package-level
// singleton.
type Reconciler struct {
	mu     sync.Mutex
	status api.UpdateStatus

	client    ToolClient
	executor  *Executor
	discovery *Discovery
	store     SnapshotWriter
	bcast     *Broadcaster
}

// New creates a Reconciler with all-unknown defaults. store may be nil, in
// which case snapshots are not persisted (used by one-shot CLI runs).
func New(client ToolClient, store SnapshotWriter) *Reconciler {
	return &Reconciler{
		status: api.UpdateStatus{
			CurrentVersion: toolclient.VersionUnknown,
			LatestVersion:  toolclient.VersionUnknown,
			NewFeatures:    []string{},
		},
		client:    client,
		executor:  NewExecutor(client),
		discovery: NewDiscovery(client),
		store:     store,
		bcast:     NewBroadcaster(),
	}
}

// GetStatus returns a copy of the current status.
func (r *Reconciler) GetStatus() api.UpdateStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyStatus(r.status)
}

// SubscribePhases attaches a phase-transition subscriber.
func (r *Reconciler) SubscribePhases() (<-chan api.PhaseEvent, func()) {
	return r.bcast.Subscribe()
}

// DiscoverFeatures runs capability discovery independently of the main
// cycle. It does not touch the status record.
func (r *Reconciler) DiscoverFeatures(ctx context.Context) []string {
	return r.discovery.DiscoverFeatures(ctx)
}

// CheckForUpdate runs one reconciliation cycle: probe installed and latest
// versions, force the install, verify, discover features, persist.
//
// The checking/updating flags act as an advisory lock. If either is set a
// concurrent cycle is in flight and this call returns the current status
// unchanged without spawning anything. The cycle is a failure boundary: it
// never returns an error, only a status that may carry one.
func (r *Reconciler) CheckForUpdate(ctx context.Context) api.UpdateStatus {
	r.mu.Lock()
	if r.status.Checking || r.status.Updating {
		logging.Debug("Reconciler", "Cycle %s still in flight, dropping request", r.status.CycleID)
		status := copyStatus(r.status)
		r.mu.Unlock()
		return status
	}

	cycleID := uuid.NewString()
	// A stale error from a previous cycle is meaningless once a new cycle
	// starts; clear it here rather than letting it persist past recovery.
	r.status.Error = ""
	r.status.Checking = true
	r.status.CycleID = cycleID
	r.mu.Unlock()

	logging.Info("Reconciler", "Cycle %s: checking versions", cycleID)
	r.bcast.Publish(api.PhaseEvent{Phase: api.PhaseChecking, CycleID: cycleID})

	current := r.client.InstalledVersion(ctx)
	latest := r.client.LatestVersion(ctx)

	r.mu.Lock()
	r.status.CurrentVersion = current
	r.status.LatestVersion = latest
	r.status.UpdateAvailable = updateAvailable(current, latest)
	r.status.Updating = true
	r.mu.Unlock()

	logging.Info("Reconciler", "Cycle %s: installed=%s latest=%s, forcing update", cycleID, current, latest)
	r.bcast.Publish(api.PhaseEvent{Phase: api.PhaseUpdating, CycleID: cycleID, Version: latest})

	if err := r.executor.PerformUpdate(ctx); err != nil {
		logging.Error("Reconciler", err, "Cycle %s: update failed", cycleID)
		return r.finishCycle(cycleID, err)
	}

	verified := r.executor.VerifyUpdate(ctx, latest)

	r.bcast.Publish(api.PhaseEvent{Phase: api.PhaseLearning, CycleID: cycleID, Version: verified})
	features := r.discovery.DiscoverFeatures(ctx)

	r.mu.Lock()
	r.status.CurrentVersion = verified
	r.status.NewFeatures = features
	r.mu.Unlock()

	logging.Info("Reconciler", "Cycle %s: now at %s with %d features", cycleID, verified, len(features))
	return r.finishCycle(cycleID, nil)
}

// finishCycle clears the in-flight flags, stamps the completion time,
// records a failure if any, persists the snapshot and broadcasts the
// terminal phase. It returns the final status copy for the caller.
func (r *Reconciler) finishCycle(cycleID string, cycleErr error) api.UpdateStatus {
	now := time.Now()

	r.mu.Lock()
	r.status.Checking = false
	r.status.Updating = false
	r.status.LastCheck = &now
	if cycleErr != nil {
		r.status.Error = cycleErr.Error()
	}
	status := copyStatus(r.status)
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.Persist(status); err != nil {
			// In-memory status stays authoritative for this process.
			logging.Error("Reconciler", err, "Cycle %s: snapshot persist failed", cycleID)
		}
	}

	if cycleErr != nil {
		r.bcast.Publish(api.PhaseEvent{Phase: api.PhaseError, CycleID: cycleID, Error: cycleErr.Error()})
	} else {
		r.bcast.Publish(api.PhaseEvent{Phase: api.PhaseReady, CycleID: cycleID, Version: status.CurrentVersion})
	}
	return status
}

// updateAvailable compares versions informationally. Sentinel values compare
// as false; non-semver strings fall back to inequality.
func updateAvailable(current, latest string) bool {
	if toolclient.IsSentinel(current) || toolclient.IsSentinel(latest) {
		return false
	}
	cv, errCurrent := semver.NewVersion(current)
	lv, errLatest := semver.NewVersion(latest)
	if errCurrent != nil || errLatest != nil {
		return current != latest
	}
	return lv.GreaterThan(cv)
}

// copyStatus deep-copies the record so callers cannot alias the slice held
// under the mutex.
func copyStatus(s api.UpdateStatus) api.UpdateStatus {
	out := s
	out.NewFeatures = make([]string, len(s.NewFeatures))
	copy(out.NewFeatures, s.NewFeatures)
	if s.LastCheck != nil {
		t := *s.LastCheck
		out.LastCheck = &t
	}
	return out
}
