package guardian

import (
	"fmt"

	"finpal-guardian/internal/model"
)

// RoutingFailure means the resolved or hinted category has no pipeline.
type RoutingFailure struct {
	Attempted string
}

func (e *RoutingFailure) Error() string {
	return fmt.Sprintf("routing failed: unsupported category %q", e.Attempted)
}

// ValidationError means a sub-request projected from the inbound request is invalid.
type ValidationError struct {
	Category model.Category
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s request: %s %s", e.Category, e.Field, e.Reason)
}
