package audit

import (
	"strings"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/table"
)

const noOwners = "-"

// Columns lists the report columns in display order. The inactive column is
// only present when showInactive is set.
func Columns(showInactive bool) []table.Column[Project] {
	columns := []table.Column[Project]{
		{Header: "display_name", Value: func(p Project) string { return p.DisplayName }},
		{Header: "owners", Value: ownersCell},
		{Header: "create_date", Value: func(p Project) string { return p.CreateDate }},
		{Header: "project_id", Value: func(p Project) string { return p.ID }},
	}

	if showInactive {
		columns = append(columns, table.Column[Project]{Header: "inactive", Value: inactiveCell})
	}

	return columns
}

func ownersCell(p Project) string {
	if len(p.Owners) == 0 {
		return noOwners
	}
	return strings.Join(p.Owners, ", ")
}

func inactiveCell(p Project) string {
	if p.Inactive {
		return "True"
	}
	return "False"
}
