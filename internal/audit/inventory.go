package audit

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/resource"
)

const projectAssetType = "cloudresourcemanager.googleapis.com/Project"

// FetchProjects lists every project under the organization.
func FetchProjects(ctx context.Context, src ProjectSearcher, org string) ([]Project, error) {
	results, err := src.SearchResources(ctx, OrganizationScope(org), []string{projectAssetType})
	if err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(results))
	for _, r := range results {
		id, err := resource.ProjectSegment(r.GetName())
		if err != nil {
			return nil, err
		}

		number, err := resource.SegmentAfter(r.GetProject(), "/")
		if err != nil {
			return nil, err
		}

		created := r.GetCreateTime()
		if created == nil {
			return nil, fmt.Errorf("%w: %s has no create time", ErrMalformedResult, r.GetName())
		}
		if err := created.CheckValid(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResult, r.GetName(), err)
		}

		projects = append(projects, Project{
			ID:          id,
			Number:      number,
			DisplayName: r.GetDisplayName(),
			CreateDate:  created.AsTime().UTC().Format("2006-01-02"),
		})
	}

	return projects, nil
}

// OrganizationScope is the search scope for an organization ID.
func OrganizationScope(org string) string {
	return "organizations/" + org
}
