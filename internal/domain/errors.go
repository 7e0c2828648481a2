// internal/domain/errors.go

package domain

import "fmt"

// ValidationError reports a missing or malformed required field. The request
// is rejected before any computation runs.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InsufficientDataError reports a series that is too short to analyze.
type InsufficientDataError struct {
	What     string
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need at least %d %s, got %d", e.Required, e.What, e.Got)
}

// ComputationError wraps an unexpected numeric failure. The original message
// is preserved so callers see what actually went wrong.
type ComputationError struct {
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation failed: %v", e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}
