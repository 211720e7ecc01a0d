package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gcp-project-cleanup version %s\n", cmd.Root().Version)
			fmt.Fprintln(out, "\nAPIs:")
			fmt.Fprintln(out, "  Cloud Asset:  v1 (SearchAllResources, SearchAllIamPolicies)")
			fmt.Fprintln(out, "  Recommender:  v1 (google.resourcemanager.projectUtilization.Recommender)")
		},
	}
}
