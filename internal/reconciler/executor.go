package reconciler

import (
	"context"
	"fmt"

	"freshd/internal/toolclient"
	"freshd/pkg/logging"
)

// Executor forces the managed tool to its latest version. The primary
// install must succeed for a cycle to be considered successful; the
// secondary global install is best-effort redundancy.
type Executor struct {
	client ToolClient
}

// NewExecutor creates an Executor backed by the given client.
func NewExecutor(client ToolClient) *Executor {
	return &Executor{client: client}
}

// PerformUpdate runs the primary install followed by the secondary global
// install. Primary failure is returned to the caller and aborts the cycle;
// secondary failure is logged and swallowed.
func (e *Executor) PerformUpdate(ctx context.Context) error {
	if err := e.client.Install(ctx); err != nil {
		return fmt.Errorf("primary install failed: %w", err)
	}

	if err := e.client.InstallGlobal(ctx); err != nil {
		logging.Warn("Executor", "Secondary global install failed (non-fatal): %v", err)
	}
	return nil
}

// VerifyUpdate re-probes the installed version after an install to record
// the effective version. When the probe degrades to a sentinel it falls back
// to the previously known latest value.
func (e *Executor) VerifyUpdate(ctx context.Context, knownLatest string) string {
	v := e.client.InstalledVersion(ctx)
	if toolclient.IsSentinel(v) && !toolclient.IsSentinel(knownLatest) {
		logging.Debug("Executor", "Verification probe degraded to %q, recording known latest %q", v, knownLatest)
		return knownLatest
	}
	return v
}
