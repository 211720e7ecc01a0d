// Package snapshot serves recorded Cloud Asset and Recommender results from a file.
//
// A snapshot lets the report run offline, against fixtures, or against data
// exported from an emulator. It implements the same source interfaces as the
// live API clients, so the recorded results go through the exact same parsing.
//
// Supports both YAML (.yaml, .yml) and JSON (.json) snapshot files.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/asset/apiv1/assetpb"
	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
	"google.golang.org/genproto/googleapis/type/expr"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gopkg.in/yaml.v3"
)

// Snapshot represents the snapshot file structure
type Snapshot struct {
	Projects        []Project        `yaml:"projects" json:"projects"`
	Policies        []Policy         `yaml:"iam_policies" json:"iam_policies"`
	Recommendations []Recommendation `yaml:"recommendations" json:"recommendations"`
}

// Project is a recorded project resource search result
type Project struct {
	Name        string     `yaml:"name" json:"name"`
	Project     string     `yaml:"project" json:"project"`
	DisplayName string     `yaml:"display_name" json:"display_name"`
	CreateTime  *time.Time `yaml:"create_time,omitempty" json:"create_time,omitempty"`
}

// Policy is a recorded IAM policy search result
type Policy struct {
	Resource string    `yaml:"resource" json:"resource"`
	Bindings []Binding `yaml:"bindings" json:"bindings"`
}

// Binding represents an IAM binding
type Binding struct {
	Role      string     `yaml:"role" json:"role"`
	Members   []string   `yaml:"members" json:"members"`
	Condition *Condition `yaml:"condition,omitempty" json:"condition,omitempty"`
}

// Condition represents a CEL condition
type Condition struct {
	Expression  string `yaml:"expression" json:"expression"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Recommendation is a recorded recommender result
type Recommendation struct {
	Name            string           `yaml:"name,omitempty" json:"name,omitempty"`
	Description     string           `yaml:"description,omitempty" json:"description,omitempty"`
	OperationGroups []OperationGroup `yaml:"operation_groups" json:"operation_groups"`
}

// OperationGroup groups recommended operations
type OperationGroup struct {
	Operations []Operation `yaml:"operations" json:"operations"`
}

// Operation is a single recommended operation
type Operation struct {
	Action       string `yaml:"action,omitempty" json:"action,omitempty"`
	ResourceType string `yaml:"resource_type,omitempty" json:"resource_type,omitempty"`
	Resource     string `yaml:"resource" json:"resource"`
}

// Load loads and parses a snapshot file (supports .yaml, .yml, and .json)
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap Snapshot

	// Detect format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot (unknown extension %s, tried YAML): %w", ext, err)
		}
	}

	return &snap, nil
}

// SearchResources returns the recorded projects. Scope and asset types are
// ignored; a snapshot holds one organization's projects.
func (s *Snapshot) SearchResources(ctx context.Context, scope string, assetTypes []string) ([]*assetpb.ResourceSearchResult, error) {
	results := make([]*assetpb.ResourceSearchResult, 0, len(s.Projects))
	for _, p := range s.Projects {
		r := &assetpb.ResourceSearchResult{
			Name:        p.Name,
			AssetType:   "cloudresourcemanager.googleapis.com/Project",
			Project:     p.Project,
			DisplayName: p.DisplayName,
		}
		if p.CreateTime != nil {
			r.CreateTime = timestamppb.New(*p.CreateTime)
		}
		results = append(results, r)
	}
	return results, nil
}

// SearchIamPolicies returns the recorded policies.
func (s *Snapshot) SearchIamPolicies(ctx context.Context, scope, query string) ([]*assetpb.IamPolicySearchResult, error) {
	results := make([]*assetpb.IamPolicySearchResult, 0, len(s.Policies))
	for _, p := range s.Policies {
		policy := &iampb.Policy{}
		for _, b := range p.Bindings {
			binding := &iampb.Binding{Role: b.Role, Members: b.Members}
			if b.Condition != nil {
				binding.Condition = &expr.Expr{
					Expression:  b.Condition.Expression,
					Title:       b.Condition.Title,
					Description: b.Condition.Description,
				}
			}
			policy.Bindings = append(policy.Bindings, binding)
		}
		results = append(results, &assetpb.IamPolicySearchResult{
			Resource: p.Resource,
			Policy:   policy,
		})
	}
	return results, nil
}

// ListRecommendations returns the recorded recommendations.
func (s *Snapshot) ListRecommendations(ctx context.Context, parent string) ([]*recommenderpb.Recommendation, error) {
	results := make([]*recommenderpb.Recommendation, 0, len(s.Recommendations))
	for _, r := range s.Recommendations {
		content := &recommenderpb.RecommendationContent{}
		for _, g := range r.OperationGroups {
			group := &recommenderpb.OperationGroup{}
			for _, op := range g.Operations {
				group.Operations = append(group.Operations, &recommenderpb.Operation{
					Action:       op.Action,
					ResourceType: op.ResourceType,
					Resource:     op.Resource,
				})
			}
			content.OperationGroups = append(content.OperationGroups, group)
		}
		results = append(results, &recommenderpb.Recommendation{
			Name:        r.Name,
			Description: r.Description,
			Content:     content,
		})
	}
	return results, nil
}
