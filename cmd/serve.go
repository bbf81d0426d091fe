package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"freshd/internal/app"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveConfigPath specifies a custom configuration directory path.
// Empty means the current working directory.
var serveConfigPath string

// servePort overrides the configured listen port when non-zero.
var servePort int

// serveCmd defines the serve command structure. This is the main command of
// freshd: it starts the reconciliation scheduler and the HTTP API and runs
// until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the freshd daemon",
	Long: `Starts the freshd daemon: an immediate reconciliation cycle, a periodic
scheduler, and the HTTP API.

The daemon exposes:
  GET  /api/update-status   current status (never triggers a cycle)
  POST /api/check-update    force a reconciliation cycle
  GET  /api/features        capability discovery
  GET  /api/events          WebSocket stream of phase transitions

Configuration is read from config.yaml in the current directory (or the
directory given with --config-path). The FRESHD_PORT environment variable
overrides the configured port; --port overrides both.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, false, serveConfigPath, servePort)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config and FRESHD_PORT)")
}
