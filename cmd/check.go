package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"freshd/internal/api"
	"freshd/internal/app"
	"freshd/internal/cli"
	"freshd/internal/config"
	"freshd/internal/reconciler"
	"freshd/internal/store"
	"freshd/pkg/logging"
)

var (
	checkOutputFormat string
	checkQuiet        bool
	checkConfigPath   string
)

// checkCmd runs one reconciliation cycle in-process, without a daemon. The
// resulting status is printed and persisted to the snapshot file exactly as
// the daemon would.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one reconciliation cycle now",
	Long: `Runs a single reconciliation cycle in-process: probe installed and
latest versions, force a re-install of the managed tool, discover its
capability surface, and persist the status snapshot.

Examples:
  freshd check
  freshd check -o json
  freshd check --quiet`,
	Args: cobra.NoArgs,
	RunE: runCheckCycle,
}

func runCheckCycle(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(checkOutputFormat); err != nil {
		return err
	}

	// Logs would corrupt structured output; keep them on stderr.
	logging.Init(logging.LevelWarn, cmd.ErrOrStderr())

	cfg, err := config.LoadConfig(checkConfigPath)
	if err != nil {
		return err
	}

	client := app.BuildToolClient(cfg)
	rec := reconciler.New(client, store.New(cfg.Updater.StateDir))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var status api.UpdateStatus
	err = cli.WithSpinner("Reconciling "+cfg.Tool.Package+"...", checkQuiet, func() error {
		status = rec.CheckForUpdate(ctx)
		return nil
	})
	if err != nil {
		return err
	}

	return printStatus(cmd.OutOrStdout(), status, cli.OutputFormat(checkOutputFormat))
}

// printStatus renders an UpdateStatus in the selected output format.
func printStatus(w io.Writer, status api.UpdateStatus, format cli.OutputFormat) error {
	switch format {
	case cli.OutputFormatJSON:
		return cli.PrintJSON(w, status)
	case cli.OutputFormatYAML:
		return cli.PrintYAML(w, status)
	default:
		cli.PrintStatusTable(w, status)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Suppress the progress spinner")
	checkCmd.Flags().StringVar(&checkConfigPath, "config-path", "", "Custom configuration directory path")
}
