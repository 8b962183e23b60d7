package domain

import "fmt"

// ValidationError reports a line that is missing required fields or carries a
// non-positive quantity where one is required. Lines are rejected before any
// scheduling runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}
