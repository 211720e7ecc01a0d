// Package gcp owns the Cloud Asset and Recommender API clients.
//
// Clients are constructed once per run and handed to the report as explicit
// handles. Every list call drains server-side pagination and returns the
// complete result in the order the API returned it.
package gcp

import (
	"context"
	"errors"
	"fmt"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/asset/apiv1/assetpb"
	recommender "cloud.google.com/go/recommender/apiv1"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// Options controls how the API clients authenticate and where they connect.
// Zero values fall back to Application Default Credentials and the public endpoints.
type Options struct {
	CredentialsFile     string
	AccessToken         string
	QuotaProject        string
	AssetEndpoint       string
	RecommenderEndpoint string
	UserAgent           string
}

// Clients bundles the API clients used by one report run.
type Clients struct {
	assets          *asset.Client
	recommendations *recommender.Client
}

// NewClients dials the Cloud Asset and Recommender APIs.
func NewClients(ctx context.Context, opts Options) (*Clients, error) {
	assets, err := asset.NewClient(ctx, opts.clientOptions(opts.AssetEndpoint)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset client: %w", err)
	}

	recommendations, err := recommender.NewClient(ctx, opts.clientOptions(opts.RecommenderEndpoint)...)
	if err != nil {
		assets.Close()
		return nil, fmt.Errorf("failed to create recommender client: %w", err)
	}

	return &Clients{assets: assets, recommendations: recommendations}, nil
}

func (o Options) clientOptions(endpoint string) []option.ClientOption {
	var opts []option.ClientOption

	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	if o.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsFile))
	}
	if o.AccessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.AccessToken})
		opts = append(opts, option.WithTokenSource(src))
	}
	if o.QuotaProject != "" {
		opts = append(opts, option.WithQuotaProject(o.QuotaProject))
	}
	if o.UserAgent != "" {
		opts = append(opts, option.WithUserAgent(o.UserAgent))
	}

	return opts
}

// Close releases both client connections.
func (c *Clients) Close() error {
	return errors.Join(c.assets.Close(), c.recommendations.Close())
}

// SearchResources returns every resource of the given asset types under scope.
func (c *Clients) SearchResources(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error) {
	it := c.assets.SearchAllResources(ctx, &assetpb.SearchAllResourcesRequest{
		Scope:      scope,
		AssetTypes: assetTypes,
	})
	return Drain(it.Next)
}

// SearchIamPolicies returns every IAM policy under scope matching query.
func (c *Clients) SearchIamPolicies(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error) {
	it := c.assets.SearchAllIamPolicies(ctx, &assetpb.SearchAllIamPoliciesRequest{
		Scope: scope,
		Query: query,
	})
	return Drain(it.Next)
}

// ListRecommendations returns every recommendation of the recommender at parent.
func (c *Clients) ListRecommendations(ctx context.Context, parent string) ([]*recommenderpb.Recommendation, error) {
	it := c.recommendations.ListRecommendations(ctx, &recommenderpb.ListRecommendationsRequest{
		Parent: parent,
	})
	return Drain(it.Next)
}
