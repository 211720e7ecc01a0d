// Package cli wires the cobra commands of gcp-project-cleanup.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/config"
)

// Execute runs the root command and reports any failure on stderr.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(version)
	if err := root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(root.ErrOrStderr(), "✗ %v\n", err)
		return err
	}
	return nil
}

func newRootCmd(version string) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "gcp-project-cleanup ORG_ID",
		Short: "Report owners, age and activity of every project in an organization",
		Long: `Audit the projects of a GCP organization.

For every project the report shows its display name, the users holding
roles/owner, its creation date and its project ID. Active projects are listed
first, oldest first; projects flagged by the project utilization recommender
follow. Nothing is modified.`,
		Example: `  gcp-project-cleanup 123456789012
  gcp-project-cleanup 123456789012 --show-inactive
  gcp-project-cleanup 123456789012 --snapshot recorded.yaml`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			return config.UseFile(configFile)
		},
		RunE: runReport,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $HOME/.gcp-project-cleanup/config.yaml or ./config.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-format", "", "Log format (console|structured)")
	root.Flags().Bool("show-inactive", false, "Show the inactive column")
	root.Flags().String("snapshot", "", "Read recorded API results from a YAML or JSON file instead of calling the APIs")

	// Bind flags to viper
	viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", root.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("show-inactive", root.Flags().Lookup("show-inactive"))
	viper.BindPFlag("snapshot", root.Flags().Lookup("snapshot"))

	root.AddCommand(newConfigCmd(), newVersionCmd())

	return root
}
