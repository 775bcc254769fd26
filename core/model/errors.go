package model

import "fmt"

// InvalidInputError reports telemetry that cannot produce a meaningful
// service decision. It is only returned by Validate; NeedsService never fails.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
