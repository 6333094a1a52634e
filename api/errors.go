package api

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a required parameter is missing. No
// request is made in that case.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RemoteError carries a non-200 response. The explorer explains failures in
// the body, so Error returns the body unchanged.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return e.Body
}

// String includes the status code for display, with surrounding whitespace
// of the body removed.
func (e *RemoteError) String() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}
