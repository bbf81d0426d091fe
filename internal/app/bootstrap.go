package app

import (
	"fmt"
	"io"
	"os"

	"freshd/internal/config"
	"freshd/internal/reconciler"
	"freshd/internal/server"
	"freshd/internal/store"
	"freshd/internal/toolclient"
	"freshd/pkg/logging"
)

// Application wires freshd's components together and runs them.
type Application struct {
	config     *Config
	reconciler *reconciler.Reconciler
	watcher    *store.Watcher
	server     *server.Server
}

// NewApplication performs the bootstrap sequence: logging, configuration,
// component construction and API registration. The returned application is
// ready to Run.
func NewApplication(cfg *Config) (*Application, error) {
	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	var logOutput io.Writer = os.Stdout
	if cfg.Silent {
		logOutput = io.Discard
	}
	logging.Init(logLevel, logOutput)

	freshdCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from %s", cfg.ConfigPath)
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Port != 0 {
		freshdCfg.Server.Port = cfg.Port
	}
	cfg.FreshdConfig = &freshdCfg

	client := BuildToolClient(freshdCfg)
	snapshotStore := store.New(freshdCfg.Updater.StateDir)
	rec := reconciler.New(client, snapshotStore)
	rec.RegisterWithAPI()

	logging.Info("Bootstrap", "Managing %s (tag %s), checking every %s",
		freshdCfg.Tool.Package, freshdCfg.Tool.Tag, freshdCfg.CheckInterval())

	return &Application{
		config:     cfg,
		reconciler: rec,
		watcher:    store.NewWatcher(snapshotStore),
		server:     server.New(freshdCfg.Server),
	}, nil
}

// BuildToolClient constructs the production tool client from configuration.
// Exported for one-shot CLI commands that need a client without the full
// daemon.
func BuildToolClient(cfg config.FreshdConfig) *toolclient.Client {
	return toolclient.NewClient(toolclient.ToolSpec{
		Package:  cfg.Tool.Package,
		Tag:      cfg.Tool.Tag,
		Command:  cfg.Tool.Command,
		Launcher: cfg.Tool.Launcher,
	}, nil)
}
