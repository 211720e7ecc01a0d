package audit

import (
	"context"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/resource"
)

const utilizationRecommender = "google.resourcemanager.projectUtilization.Recommender"

// FetchInactive returns the numbers of projects the utilization recommender
// flags as unattended.
func FetchInactive(ctx context.Context, src RecommendationLister, org string) (map[string]struct{}, error) {
	recommendations, err := src.ListRecommendations(ctx, RecommenderParent(org))
	if err != nil {
		return nil, err
	}

	inactive := make(map[string]struct{})
	for _, rec := range recommendations {
		for _, group := range rec.GetContent().GetOperationGroups() {
			for _, op := range group.GetOperations() {
				if !resource.HasProjectSegment(op.GetResource()) {
					continue
				}
				number, err := resource.ProjectSegment(op.GetResource())
				if err != nil {
					return nil, err
				}
				inactive[number] = struct{}{}
			}
		}
	}

	return inactive, nil
}

// RecommenderParent is the recommender resource name for an organization.
func RecommenderParent(org string) string {
	return OrganizationScope(org) + "/locations/global/recommenders/" + utilizationRecommender
}
