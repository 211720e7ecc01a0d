package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/audit"
	"github.com/blackwell-systems/gcp-project-cleanup/internal/config"
	"github.com/blackwell-systems/gcp-project-cleanup/internal/gcp"
	"github.com/blackwell-systems/gcp-project-cleanup/internal/logging"
	"github.com/blackwell-systems/gcp-project-cleanup/internal/snapshot"
)

func runReport(cmd *cobra.Command, args []string) error {
	// Load configuration (Viper resolves behind the scenes)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLoggerFactory().CreateLogger(logging.Level(cfg.LogLevel), logging.Format(cfg.LogFormat))
	if err != nil {
		return err
	}
	defer logging.Flush(logger)

	ctx := cmd.Context()
	sources, closeSources, err := openSources(ctx, cfg, cmd.Root().Version)
	if err != nil {
		return err
	}
	defer closeSources()

	service := audit.NewService(sources, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return service.Run(ctx, args[0], audit.Options{ShowInactive: cfg.ShowInactive})
}

// openSources returns the snapshot when one is configured and the live API
// clients otherwise.
func openSources(ctx context.Context, cfg *config.Config, version string) (audit.Sources, func(), error) {
	if cfg.Snapshot != "" {
		snap, err := snapshot.Load(cfg.Snapshot)
		if err != nil {
			return audit.Sources{}, nil, err
		}
		return audit.Sources{Projects: snap, Policies: snap, Recommendations: snap}, func() {}, nil
	}

	clients, err := gcp.NewClients(ctx, gcp.Options{
		CredentialsFile:     cfg.Credentials.File,
		AccessToken:         cfg.Credentials.AccessToken,
		QuotaProject:        cfg.Credentials.QuotaProject,
		AssetEndpoint:       cfg.Endpoints.Asset,
		RecommenderEndpoint: cfg.Endpoints.Recommender,
		UserAgent:           fmt.Sprintf("gcp-project-cleanup/%s", version),
	})
	if err != nil {
		return audit.Sources{}, nil, err
	}

	sources := audit.Sources{Projects: clients, Policies: clients, Recommendations: clients}
	return sources, func() { clients.Close() }, nil
}
