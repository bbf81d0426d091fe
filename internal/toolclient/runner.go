package toolclient

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"freshd/pkg/logging"
)

// Runner executes an external command and returns its combined standard
// output. Implementations must honor context cancellation.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// npmQuietEnv suppresses npm's notification, funding and audit side effects
// on every spawned process. These are informational knobs only; the
// reconciliation logic does not depend on them.
var npmQuietEnv = []string{
	"NO_UPDATE_NOTIFIER=1",
	"NPM_CONFIG_UPDATE_NOTIFIER=false",
	"NPM_CONFIG_FUND=false",
	"NPM_CONFIG_AUDIT=false",
}

// DefaultSpawnTimeout bounds a single external invocation. Installs through
// npx can legitimately take minutes on a cold cache.
const DefaultSpawnTimeout = 5 * time.Minute

// ExecRunner runs commands via os/exec with the npm noise-suppression
// environment applied and a bounded per-spawn timeout.
type ExecRunner struct {
	// Timeout bounds each invocation. Zero means DefaultSpawnTimeout.
	Timeout time.Duration
}

// Run executes the command and returns trimmed-as-is stdout. A non-zero exit
// or spawn failure is returned as an error; stderr is attached to the error
// message for operator visibility.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultSpawnTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), npmQuietEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logging.Debug("ToolClient", "Ran %s %v in %s (err=%v)", name, args, time.Since(start).Round(time.Millisecond), err)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return stdout.String(), fmt.Errorf("command %s timed out after %s", name, timeout)
		}
		if msg := stderr.String(); msg != "" {
			return stdout.String(), fmt.Errorf("command %s failed: %w: %s", name, err, msg)
		}
		return stdout.String(), fmt.Errorf("command %s failed: %w", name, err)
	}
	return stdout.String(), nil
}
