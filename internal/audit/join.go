package audit

import (
	"slices"
	"strings"
)

// Join fills in Owners and Inactive for every project.
func Join(projects []Project, owners map[string]Usernames, inactive map[string]struct{}) {
	for i := range projects {
		projects[i].Owners = owners[projects[i].ID].Sorted()
		_, projects[i].Inactive = inactive[projects[i].Number]
	}
}

// Sort orders active projects before inactive ones, each group by creation
// date. Projects with equal keys keep their fetch order.
func Sort(projects []Project) {
	slices.SortStableFunc(projects, func(a, b Project) int {
		if a.Inactive != b.Inactive {
			if a.Inactive {
				return 1
			}
			return -1
		}
		return strings.Compare(a.CreateDate, b.CreateDate)
	})
}
