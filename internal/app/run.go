package app

import (
	"context"
	"errors"
	"time"

	sddaemon "github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"

	"freshd/pkg/logging"
)

// Run executes the daemon until the context is cancelled: one mandatory
// startup cycle, then the periodic scheduler, the HTTP server and the
// snapshot watcher in parallel.
func (a *Application) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.server.Run(ctx)
	})

	group.Go(func() error {
		return a.runScheduler(ctx)
	})

	group.Go(func() error {
		err := a.watcher.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	notifySystemd(sddaemon.SdNotifyReady)
	defer notifySystemd(sddaemon.SdNotifyStopping)

	err := group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runScheduler runs the startup reconciliation cycle immediately, then one
// cycle per configured interval. Forced checks arriving over HTTP while a
// scheduled cycle is in flight are dropped by the reconciler's advisory
// lock, and vice versa.
func (a *Application) runScheduler(ctx context.Context) error {
	interval := a.config.FreshdConfig.CheckInterval()

	logging.Info("Scheduler", "Running startup reconciliation cycle")
	a.reconciler.CheckForUpdate(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.reconciler.CheckForUpdate(ctx)
		}
	}
}

// notifySystemd sends an sd_notify message when running under systemd. It is
// a silent no-op elsewhere.
func notifySystemd(state string) {
	if _, err := sddaemon.SdNotify(false, state); err != nil {
		logging.Debug("Bootstrap", "sd_notify failed: %v", err)
	}
}
