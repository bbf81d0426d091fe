package reconciler

import "freshd/internal/api"

// RegisterWithAPI registers the reconciler as the updater and discovery
// handler in the central API layer. Called once during bootstrap.
func (r *Reconciler) RegisterWithAPI() {
	api.RegisterUpdater(r)
	api.RegisterDiscovery(r)
}

// Compile-time interface checks.
var (
	_ api.UpdaterHandler   = (*Reconciler)(nil)
	_ api.DiscoveryHandler = (*Reconciler)(nil)
)
