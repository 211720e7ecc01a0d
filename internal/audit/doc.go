// Package audit builds the project cleanup report for a GCP organization.
//
// A run performs three read-only fetches one after another:
//
//   - the project inventory (Cloud Asset resource search)
//   - owner bindings (Cloud Asset IAM policy search for roles/owner)
//   - inactive projects (project utilization recommender)
//
// The results are joined by project ID and project number, sorted with active
// projects first and oldest first within each group, and rendered as a table.
// Any error aborts the run before anything is written.
package audit
