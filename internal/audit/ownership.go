package audit

import (
	"context"
	"strings"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/resource"
)

const (
	ownerRole        = "roles/owner"
	ownerPolicyQuery = "policy:" + ownerRole
	userMemberPrefix = "user:"
)

// FetchOwners maps project IDs to the usernames holding roles/owner on them.
// Only user principals count; policies attached above the project level are
// skipped because they cannot be joined to a project.
func FetchOwners(ctx context.Context, src PolicySearcher, org string) (map[string]Usernames, error) {
	policies, err := src.SearchIamPolicies(ctx, OrganizationScope(org), ownerPolicyQuery)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]Usernames)
	for _, p := range policies {
		if !resource.HasProjectSegment(p.GetResource()) {
			continue
		}

		projectID, err := resource.ProjectSegment(p.GetResource())
		if err != nil {
			return nil, err
		}

		for _, binding := range p.GetPolicy().GetBindings() {
			if binding.GetRole() != ownerRole {
				continue
			}
			for _, member := range binding.GetMembers() {
				name, ok := ownerUsername(member)
				if !ok {
					continue
				}
				if owners[projectID] == nil {
					owners[projectID] = make(Usernames)
				}
				owners[projectID].Add(name)
			}
		}
	}

	return owners, nil
}

// ownerUsername turns "user:jane.doe@example.com" into "jane.doe".
func ownerUsername(member string) (string, bool) {
	email, ok := strings.CutPrefix(member, userMemberPrefix)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(email, "@")
	return name, name != ""
}
