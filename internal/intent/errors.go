package intent

import (
	"errors"
	"fmt"
)

var ErrMissingRationale = errors.New("model returned no rationale")

// ClassificationError is returned when the classifier cannot produce a decision.
type ClassificationError struct {
	// Attempted is the category literal the model returned, if any.
	Attempted string
	Err       error
}

func (e *ClassificationError) Error() string {
	if e.Attempted != "" {
		return fmt.Sprintf("classification failed: model returned %q: %v", e.Attempted, e.Err)
	}
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
