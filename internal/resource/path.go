// Package resource extracts identifiers from Google Cloud resource names.
//
// Cloud Asset and Recommender results reference projects through full
// resource names such as
//
//	//cloudresourcemanager.googleapis.com/projects/my-project
//	projects/123456789012
//
// The helpers here are the only place that splits those names.
package resource

import (
	"errors"
	"fmt"
	"strings"
)

// ProjectsDelimiter marks the project segment of a resource name.
const ProjectsDelimiter = "/projects/"

// ErrMalformedPath is returned when a resource name does not have the expected shape.
var ErrMalformedPath = errors.New("malformed resource path")

// SegmentAfter returns the path segment that follows the last occurrence of
// delimiter, up to the next "/".
func SegmentAfter(path, delimiter string) (string, error) {
	idx := strings.LastIndex(path, delimiter)
	if delimiter == "" || idx < 0 {
		return "", fmt.Errorf("%w: %q has no %q", ErrMalformedPath, path, delimiter)
	}

	segment, _, _ := strings.Cut(path[idx+len(delimiter):], "/")
	if segment == "" {
		return "", fmt.Errorf("%w: %q has an empty segment after %q", ErrMalformedPath, path, delimiter)
	}

	return segment, nil
}

// HasProjectSegment reports whether path references a project.
func HasProjectSegment(path string) bool {
	return strings.Contains(path, ProjectsDelimiter)
}

// ProjectSegment is SegmentAfter with the projects delimiter.
func ProjectSegment(path string) (string, error) {
	return SegmentAfter(path, ProjectsDelimiter)
}
