package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"freshd/internal/app"
	"freshd/internal/cli"
	"freshd/internal/config"
	"freshd/internal/reconciler"
	"freshd/pkg/logging"
)

var (
	featuresOutputFormat string
	featuresQuiet        bool
	featuresConfigPath   string
)

// featuresCmd runs capability discovery against the managed tool and prints
// the result. Discovery is independent of the reconciliation cycle and never
// fails: when the tool cannot be interrogated a fixed baseline list is
// shown.
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Discover the managed tool's capabilities",
	Long: `Invokes the managed tool's help output and extracts its capability
surface: command names plus a fixed set of capability keywords.

Examples:
  freshd features
  freshd features -o json`,
	Args: cobra.NoArgs,
	RunE: runFeatures,
}

func runFeatures(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(featuresOutputFormat); err != nil {
		return err
	}
	logging.Init(logging.LevelWarn, cmd.ErrOrStderr())

	cfg, err := config.LoadConfig(featuresConfigPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	discovery := reconciler.NewDiscovery(app.BuildToolClient(cfg))

	var features []string
	err = cli.WithSpinner("Discovering features...", featuresQuiet, func() error {
		features = discovery.DiscoverFeatures(ctx)
		return nil
	})
	if err != nil {
		return err
	}

	switch cli.OutputFormat(featuresOutputFormat) {
	case cli.OutputFormatJSON:
		return cli.PrintJSON(cmd.OutOrStdout(), features)
	case cli.OutputFormatYAML:
		return cli.PrintYAML(cmd.OutOrStdout(), features)
	default:
		cli.PrintFeaturesTable(cmd.OutOrStdout(), features)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(featuresCmd)

	featuresCmd.Flags().StringVarP(&featuresOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	featuresCmd.Flags().BoolVarP(&featuresQuiet, "quiet", "q", false, "Suppress the progress spinner")
	featuresCmd.Flags().StringVar(&featuresConfigPath, "config-path", "", "Custom configuration directory path")
}
