package api

import (
	"context"
	"time"
)

// UpdateStatus is the single process-wide record describing the freshness of
// the managed tool. It is owned by the reconciler, exposed read-only through
// the API layer, and mirrored to disk after every cycle for out-of-process
// readers.
type UpdateStatus struct {
	// Checking is true while a version probe is in flight.
	Checking bool `json:"checking"`

	// Updating is true while an install is in flight.
	Updating bool `json:"updating"`

	// CurrentVersion is the last observed installed version, or one of the
	// sentinels "unknown" / "not-installed".
	CurrentVersion string `json:"currentVersion"`

	// LatestVersion is the last observed registry version, or "unknown".
	LatestVersion string `json:"latestVersion"`

	// UpdateAvailable reports whether LatestVersion is newer than
	// CurrentVersion. Informational only: the reconciler re-installs
	// unconditionally and never gates on this value.
	UpdateAvailable bool `json:"updateAvailable"`

	// LastCheck is the wall-clock completion time of the last cycle, nil
	// before the first cycle finishes.
	LastCheck *time.Time `json:"lastCheck"`

	// NewFeatures lists capability labels discovered in the last cycle, in
	// discovery order with duplicates excluded.
	NewFeatures []string `json:"newFeatures"`

	// Error is set only when the last cycle terminated abnormally. It is
	// cleared at the start of the next cycle.
	Error string `json:"error,omitempty"`

	// CycleID identifies the reconciliation cycle that produced this record.
	CycleID string `json:"cycleId,omitempty"`
}

// Phase labels a stage of the reconciliation cycle for subscribers.
type Phase string

const (
	// PhaseChecking is broadcast when a version probe begins.
	PhaseChecking Phase = "checking"

	// PhaseUpdating is broadcast when the install step begins.
	PhaseUpdating Phase = "updating"

	// PhaseLearning is broadcast when feature discovery begins.
	PhaseLearning Phase = "learning"

	// PhaseReady is broadcast when a cycle completes successfully.
	PhaseReady Phase = "ready"

	// PhaseError is broadcast when a cycle aborts on the primary install.
	PhaseError Phase = "error"
)

// PhaseEvent is one phase transition observed by subscribers.
type PhaseEvent struct {
	// Phase is the stage the cycle just entered.
	Phase Phase `json:"phase"`

	// CycleID identifies the cycle the transition belongs to.
	CycleID string `json:"cycleId"`

	// Version carries the relevant version for the phase, when known.
	Version string `json:"version,omitempty"`

	// Error carries the failure message for PhaseError events.
	Error string `json:"error,omitempty"`

	// Timestamp is when the transition occurred.
	Timestamp time.Time `json:"timestamp"`
}

// UpdaterHandler is implemented by the reconciler and registered with this
// package during bootstrap. The HTTP server and CLI reach the reconciler
// exclusively through this interface.
type UpdaterHandler interface {
	// GetStatus returns a copy of the current status without triggering a
	// cycle.
	GetStatus() UpdateStatus

	// CheckForUpdate runs one reconciliation cycle and returns the resulting
	// status. If a cycle is already in flight it returns the current status
	// unchanged without performing any external invocation.
	CheckForUpdate(ctx context.Context) UpdateStatus

	// SubscribePhases attaches a phase-transition subscriber. The returned
	// func detaches it and must be called to avoid leaking the subscription.
	SubscribePhases() (<-chan PhaseEvent, func())
}

// DiscoveryHandler exposes capability discovery independently of the main
// reconciliation cycle.
type DiscoveryHandler interface {
	// DiscoverFeatures returns the tool's capability labels, or the fixed
	// fallback list when the tool cannot be interrogated. Never empty, never
	// an error.
	DiscoverFeatures(ctx context.Context) []string
}
