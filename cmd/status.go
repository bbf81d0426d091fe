package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"freshd/internal/api"
	"freshd/internal/cli"
	"freshd/internal/config"
	"freshd/internal/store"
	"freshd/pkg/logging"
)

var (
	statusOutputFormat string
	statusConfigPath   string
)

// statusRequestTimeout bounds the daemon query before falling back to the
// snapshot file.
const statusRequestTimeout = 2 * time.Second

// statusCmd reads the current update status, preferring a running daemon and
// falling back to the persisted snapshot.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current update status",
	Long: `Shows the current update status of the managed tool.

The command first asks a running freshd daemon over HTTP. If no daemon is
reachable it falls back to the status snapshot persisted after the last
reconciliation cycle.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(statusOutputFormat); err != nil {
		return err
	}
	logging.Init(logging.LevelWarn, cmd.ErrOrStderr())

	cfg, err := config.LoadConfig(statusConfigPath)
	if err != nil {
		return err
	}

	status, err := fetchDaemonStatus(cfg)
	if err != nil {
		snapshot, loadErr := store.New(cfg.Updater.StateDir).Load()
		if loadErr != nil {
			return fmt.Errorf("no daemon reachable (%v) and no snapshot available (%v)", err, loadErr)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "daemon not reachable, showing persisted snapshot")
		status = snapshot
	}

	return printStatus(cmd.OutOrStdout(), status, cli.OutputFormat(statusOutputFormat))
}

// fetchDaemonStatus queries a running daemon's status endpoint.
func fetchDaemonStatus(cfg config.FreshdConfig) (api.UpdateStatus, error) {
	client := &http.Client{Timeout: statusRequestTimeout}
	url := fmt.Sprintf("http://%s:%d/api/update-status", cfg.Server.Host, cfg.Server.Port)

	resp, err := client.Get(url)
	if err != nil {
		return api.UpdateStatus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return api.UpdateStatus{}, fmt.Errorf("daemon returned %s", resp.Status)
	}

	var status api.UpdateStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return api.UpdateStatus{}, err
	}
	return status, nil
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	statusCmd.Flags().StringVar(&statusConfigPath, "config-path", "", "Custom configuration directory path")
}
