package audit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/table"
)

var progress = color.New(color.FgCyan)

// Options tunes the rendered report.
type Options struct {
	ShowInactive bool
}

// Service runs the fetch, join, sort and render pipeline.
type Service struct {
	sources Sources
	logger  *zap.Logger
	output  io.Writer
	status  io.Writer
}

// NewService constructs a Service. The table goes to output; progress lines go
// to status.
func NewService(sources Sources, logger *zap.Logger, output, status io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if status == nil {
		status = io.Discard
	}
	return &Service{
		sources: sources,
		logger:  logger,
		output:  output,
		status:  status,
	}
}

// Run writes the report for org. Nothing reaches output unless every stage
// succeeds.
func (s *Service) Run(ctx context.Context, org string, opts Options) error {
	projects, err := s.Collect(ctx, org)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := table.Render(&buf, Columns(opts.ShowInactive), projects); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	_, err = buf.WriteTo(s.output)
	return err
}

// Collect fetches, joins and sorts the projects of org.
func (s *Service) Collect(ctx context.Context, org string) ([]Project, error) {
	org = NormalizeOrganization(org)
	if org == "" {
		return nil, ErrMissingOrganization
	}

	logger := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("organization", org),
	)

	progress.Fprintf(s.status, "→ Searching projects in %s\n", OrganizationScope(org))
	projects, err := FetchProjects(ctx, s.sources.Projects, org)
	if err != nil {
		return nil, &FetchError{Stage: StageProjects, Err: err}
	}
	logger.Info("projects fetched", zap.Int("projects", len(projects)))

	progress.Fprintf(s.status, "→ Searching owner bindings\n")
	owners, err := FetchOwners(ctx, s.sources.Policies, org)
	if err != nil {
		return nil, &FetchError{Stage: StageOwners, Err: err}
	}
	logger.Info("owners fetched", zap.Int("owner_projects", len(owners)))

	progress.Fprintf(s.status, "→ Listing utilization recommendations\n")
	inactive, err := FetchInactive(ctx, s.sources.Recommendations, org)
	if err != nil {
		return nil, &FetchError{Stage: StageInactivity, Err: err}
	}
	logger.Info("inactivity fetched", zap.Int("inactive_projects", len(inactive)))

	Join(projects, owners, inactive)
	Sort(projects)

	for _, p := range projects {
		logger.Debug("project joined",
			zap.String("project_id", p.ID),
			zap.String("project_number", p.Number),
			zap.Strings("owners", p.Owners),
			zap.Bool("inactive", p.Inactive),
		)
	}

	return projects, nil
}

// NormalizeOrganization accepts either "123" or "organizations/123".
func NormalizeOrganization(org string) string {
	org = strings.TrimSpace(org)
	org = strings.TrimPrefix(org, "organizations/")
	return strings.Trim(org, "/")
}
