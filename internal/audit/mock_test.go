package audit

import (
	"context"
	"time"

	"cloud.google.com/go/asset/apiv1/assetpb"
	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// mockSource implements all three sources for testing.
type mockSource struct {
	SearchResourcesFunc     func(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error)
	SearchIamPoliciesFunc   func(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error)
	ListRecommendationsFunc func(ctx context.Context, parent string) ([]*recommenderpb.Recommendation, error)
}

func (m *mockSource) SearchResources(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error) {
	if m.SearchResourcesFunc != nil {
		return m.SearchResourcesFunc(ctx, scope, assetTypes)
	}
	return nil, nil
}

func (m *mockSource) SearchIamPolicies(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error) {
	if m.SearchIamPoliciesFunc != nil {
		return m.SearchIamPoliciesFunc(ctx, scope, query)
	}
	return nil, nil
}

func (m *mockSource) ListRecommendations(ctx context.Context, parent string) ([]*recommenderpb.Recommendation, error) {
	if m.ListRecommendationsFunc != nil {
		return m.ListRecommendationsFunc(ctx, parent)
	}
	return nil, nil
}

func (m *mockSource) sources() Sources {
	return Sources{Projects: m, Policies: m, Recommendations: m}
}

func projectResult(id, number, displayName, created string) *assetpb.ResourceSearchResult {
	r := &assetpb.ResourceSearchResult{
		Name:        "//cloudresourcemanager.googleapis.com/projects/" + id,
		AssetType:   projectAssetType,
		Project:     "projects/" + number,
		DisplayName: displayName,
	}
	if created != "" {
		ts, err := time.Parse(time.RFC3339, created)
		if err != nil {
			panic(err)
		}
		r.CreateTime = timestamppb.New(ts)
	}
	return r
}

func ownerPolicy(resource string, bindings ...*iampb.Binding) *assetpb.IamPolicySearchResult {
	return &assetpb.IamPolicySearchResult{
		Resource: resource,
		Policy:   &iampb.Policy{Bindings: bindings},
	}
}

func binding(role string, members ...string) *iampb.Binding {
	return &iampb.Binding{Role: role, Members: members}
}

func recommendation(resources ...string) *recommenderpb.Recommendation {
	ops := make([]*recommenderpb.Operation, 0, len(resources))
	for _, r := range resources {
		ops = append(ops, &recommenderpb.Operation{Action: "remove", ResourceType: "cloudresourcemanager.googleapis.com/Project", Resource: r})
	}
	return &recommenderpb.Recommendation{
		Content: &recommenderpb.RecommendationContent{
			OperationGroups: []*recommenderpb.OperationGroup{{Operations: ops}},
		},
	}
}
