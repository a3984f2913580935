package aicore

import (
	"errors"
	"fmt"
)

// ErrConflict signals that a secret with the requested name already exists
// (HTTP 409 on create). The publisher reacts with exactly one update call.
var ErrConflict = errors.New("docker registry secret already exists")

// SubmitError reports a create call that failed with a status other than
// the recognized conflict code.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("failed to create docker registry secret: status %d: %s", e.StatusCode, e.Message)
}

// UpdateError reports a failed conflict-triggered update call. The secret is
// left in its pre-existing state on the server.
type UpdateError struct {
	StatusCode int
	Message    string
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("failed to update docker registry secret: status %d: %s", e.StatusCode, e.Message)
}
