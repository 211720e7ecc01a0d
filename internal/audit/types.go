package audit

import (
	"context"
	"sort"

	"cloud.google.com/go/asset/apiv1/assetpb"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
)

// Project is one row of the report.
type Project struct {
	ID          string
	Number      string
	DisplayName string
	CreateDate  string

	// Owners and Inactive are filled in by Join.
	Owners   []string
	Inactive bool
}

// Usernames is a set of owner usernames.
type Usernames map[string]struct{}

// Add inserts name into the set.
func (u Usernames) Add(name string) {
	u[name] = struct{}{}
}

// Sorted returns the usernames in lexical order.
func (u Usernames) Sorted() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProjectSearcher searches Cloud Asset resources.
type ProjectSearcher interface {
	SearchResources(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error)
}

// PolicySearcher searches IAM policies.
type PolicySearcher interface {
	SearchIamPolicies(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error)
}

// RecommendationLister lists the recommendations of a recommender.
type RecommendationLister interface {
	ListRecommendations(ctx context.Context, parent string) ([]*recommenderpb.Recommendation, error)
}

// Sources holds the three data sources of a report run.
type Sources struct {
	Projects        ProjectSearcher
	Policies        PolicySearcher
	Recommendations RecommendationLister
}
