package audit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Fetch stages reported in FetchError.
const (
	StageProjects   = "projects"
	StageOwners     = "owners"
	StageInactivity = "inactivity"
)

var (
	// ErrMissingOrganization is returned when no organization ID is given.
	ErrMissingOrganization = errors.New("organization ID is required")

	// ErrMalformedResult indicates a search result lacking a required field.
	ErrMalformedResult = errors.New("malformed search result")
)

// FetchError wraps a failure of one fetch stage.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("failed to fetch %s: %v", e.Stage, e.Err)

	var details []string
	if code := status.Code(e.Err); code != codes.OK && code != codes.Unknown {
		details = append(details, code.String())
	}
	if apiErr, ok := apierror.FromError(e.Err); ok && apiErr.Reason() != "" {
		details = append(details, apiErr.Reason())
	}
	if len(details) > 0 {
		msg += " (" + strings.Join(details, ", ") + ")"
	}

	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
