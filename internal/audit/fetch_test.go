package audit

import (
	"context"
	"testing"

	"cloud.google.com/go/asset/apiv1/assetpb"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/resource"
)

func TestFetchProjects(t *testing.T) {
	var gotScope string
	var gotTypes []string
	src := &mockSource{
		SearchResourcesFunc: func(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error) {
			gotScope, gotTypes = scope, assetTypes
			return []*assetpb.ResourceSearchResult{
				projectResult("billing-prod", "1001", "Billing Prod", "2020-01-01T23:59:59Z"),
				projectResult("sandbox-42", "1002", "Sandbox", "2018-07-09T00:00:00Z"),
			}, nil
		},
	}

	projects, err := FetchProjects(context.Background(), src, "424242")

	require.NoError(t, err)
	assert.Equal(t, "organizations/424242", gotScope)
	assert.Equal(t, []string{"cloudresourcemanager.googleapis.com/Project"}, gotTypes)
	assert.Equal(t, []Project{
		{ID: "billing-prod", Number: "1001", DisplayName: "Billing Prod", CreateDate: "2020-01-01"},
		{ID: "sandbox-42", Number: "1002", DisplayName: "Sandbox", CreateDate: "2018-07-09"},
	}, projects)
}

func TestFetchProjectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		result  *assetpb.ResourceSearchResult
		wantErr error
	}{
		{
			name: "name without projects segment",
			result: &assetpb.ResourceSearchResult{
				Name:       "//cloudresourcemanager.googleapis.com/folders/77",
				Project:    "projects/1",
				CreateTime: timestamppb.Now(),
			},
			wantErr: resource.ErrMalformedPath,
		},
		{
			name: "project reference without slash",
			result: &assetpb.ResourceSearchResult{
				Name:       "//cloudresourcemanager.googleapis.com/projects/alpha",
				Project:    "1001",
				CreateTime: timestamppb.Now(),
			},
			wantErr: resource.ErrMalformedPath,
		},
		{
			name:    "missing create time",
			result:  projectResult("alpha", "1001", "Alpha", ""),
			wantErr: ErrMalformedResult,
		},
		{
			name: "invalid create time",
			result: &assetpb.ResourceSearchResult{
				Name:       "//cloudresourcemanager.googleapis.com/projects/alpha",
				Project:    "projects/1001",
				CreateTime: &timestamppb.Timestamp{Seconds: 1, Nanos: -5},
			},
			wantErr: ErrMalformedResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockSource{
				SearchResourcesFunc: func(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error) {
					return []*assetpb.ResourceSearchResult{tt.result}, nil
				},
			}

			projects, err := FetchProjects(context.Background(), src, "1")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, projects)
		})
	}
}

func TestFetchOwners(t *testing.T) {
	var gotScope, gotQuery string
	src := &mockSource{
		SearchIamPoliciesFunc: func(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error) {
			gotScope, gotQuery = scope, query
			return []*assetpb.IamPolicySearchResult{
				ownerPolicy("//cloudresourcemanager.googleapis.com/projects/alpha",
					binding("roles/owner",
						"user:jane.doe@example.com",
						"serviceAccount:x@alpha.iam.gserviceaccount.com",
						"group:admins@example.com",
					),
					binding("roles/viewer", "user:viewer@example.com"),
				),
				ownerPolicy("//cloudresourcemanager.googleapis.com/projects/alpha",
					binding("roles/owner", "user:jane.doe@other.example.com", "user:bob@example.com"),
				),
				ownerPolicy("//cloudresourcemanager.googleapis.com/projects/beta",
					binding("roles/owner", "serviceAccount:deployer@beta.iam.gserviceaccount.com"),
				),
				ownerPolicy("//cloudresourcemanager.googleapis.com/organizations/424242",
					binding("roles/owner", "user:root@example.com"),
				),
				ownerPolicy("//cloudresourcemanager.googleapis.com/projects/gamma",
					binding("roles/ownerish", "user:mallory@example.com"),
				),
			}, nil
		},
	}

	owners, err := FetchOwners(context.Background(), src, "424242")

	require.NoError(t, err)
	assert.Equal(t, "organizations/424242", gotScope)
	assert.Equal(t, "policy:roles/owner", gotQuery)
	require.Len(t, owners, 1)
	assert.Equal(t, []string{"bob", "jane.doe"}, owners["alpha"].Sorted())
	assert.NotContains(t, owners, "beta")
	assert.NotContains(t, owners, "gamma")
}

func TestFetchOwnersMalformedResource(t *testing.T) {
	src := &mockSource{
		SearchIamPoliciesFunc: func(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error) {
			return []*assetpb.IamPolicySearchResult{
				ownerPolicy("//cloudresourcemanager.googleapis.com/projects/", binding("roles/owner", "user:a@b.c")),
			}, nil
		},
	}

	_, err := FetchOwners(context.Background(), src, "1")

	assert.ErrorIs(t, err, resource.ErrMalformedPath)
}

func TestOwnerUsername(t *testing.T) {
	tests := []struct {
		member string
		want   string
		wantOK bool
	}{
		{member: "user:jane.doe@example.com", want: "jane.doe", wantOK: true},
		{member: "user:solo", want: "solo", wantOK: true},
		{member: "serviceAccount:x@proj.iam.gserviceaccount.com"},
		{member: "group:team@example.com"},
		{member: "deleted:user:gone@example.com?uid=1"},
		{member: "user:@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			got, ok := ownerUsername(tt.member)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchInactive(t *testing.T) {
	var gotParent string
	src := &mockSource{
		ListRecommendationsFunc: func(ctx context.Context, parent string) ([]*recommenderpb.Recommendation, error) {
			gotParent = parent
			return []*recommenderpb.Recommendation{
				recommendation("//cloudresourcemanager.googleapis.com/projects/1002"),
				recommendation(
					"//cloudresourcemanager.googleapis.com/projects/1003/serviceAccounts/x",
					"//cloudresourcemanager.googleapis.com/projects/1002",
				),
				recommendation("//cloudresourcemanager.googleapis.com/organizations/424242"),
				{Content: nil},
			}, nil
		},
	}

	inactive, err := FetchInactive(context.Background(), src, "424242")

	require.NoError(t, err)
	assert.Equal(t, "organizations/424242/locations/global/recommenders/google.resourcemanager.projectUtilization.Recommender", gotParent)
	assert.Equal(t, map[string]struct{}{"1002": {}, "1003": {}}, inactive)
}
