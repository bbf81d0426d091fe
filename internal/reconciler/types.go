package reconciler

import (
	"context"

	"freshd/internal/api"
)

// ToolClient is the narrow view of the external tool adapter the reconciler
// depends on. internal/toolclient provides the production implementation.
type ToolClient interface {
	// InstalledVersion reports the currently installed version, degrading to
	// the "not-installed" / "unknown" sentinels. Never fails.
	InstalledVersion(ctx context.Context) string

	// LatestVersion reports the newest published version, degrading to
	// "unknown". Never fails.
	LatestVersion(ctx context.Context) string

	// HelpText returns the tool's help output for capability discovery.
	HelpText(ctx context.Context) (string, error)

	// Install performs the primary forced-latest install. Its failure is the
	// one fatal path of a cycle.
	Install(ctx context.Context) error

	// InstallGlobal performs the optional global install. Failure is
	// non-fatal redundancy.
	InstallGlobal(ctx context.Context) error
}

// SnapshotWriter persists a status snapshot for out-of-process readers.
// internal/store provides the production implementation.
type SnapshotWriter interface {
	Persist(status api.UpdateStatus) error
}
