// Package gcpprojectcleanup reports cleanup candidates across a GCP organization.
//
// The gcp-project-cleanup CLI lists every project in an organization together
// with its owners, creation date and whether the project utilization
// recommender considers it unattended. It only reads; nothing is deleted.
//
// # Installation
//
//	go install github.com/blackwell-systems/gcp-project-cleanup/cmd/gcp-project-cleanup@latest
//
// # Quick Start
//
//	gcp-project-cleanup 123456789012
//	gcp-project-cleanup 123456789012 --show-inactive
//	gcp-project-cleanup config
//
// # Data Sources
//
// The report is built from three read-only calls:
//   - Cloud Asset SearchAllResources: project inventory
//   - Cloud Asset SearchAllIamPolicies: roles/owner bindings
//   - Recommender ListRecommendations: google.resourcemanager.projectUtilization.Recommender
//
// The caller needs cloudasset.assets.searchAllResources,
// cloudasset.assets.searchAllIamPolicies and
// recommender.resourcemanagerProjectUtilizationRecommendations.list on the
// organization. Credentials come from Application Default Credentials unless
// credentials-file or access-token is configured.
//
// # Offline Use
//
// --snapshot replays recorded results from a YAML or JSON file, which is also
// how the report is exercised against emulator exports.
//
// # License
//
// Apache 2.0 - See LICENSE file for details.
package gcpprojectcleanup
