// Package definitions provides useful error types such as 'RangeError'.
package definitions

import (
	"errors"
	"fmt"
)

// RangeError is returned when a bounded request is made using an argument which falls outside of its valid range, for
// example a lower bound which is greater than the upper bound.
type RangeError struct {
	// Name of the offending argument e.g. 'minValue'.
	Name string

	// Value is the value given for the offending argument.
	Value any

	// Constraint describes the condition the argument failed to satisfy.
	Constraint string
}

// NewMinValueError returns a 'RangeError' for a lower bound which is greater than its upper bound.
func NewMinValueError(value any) *RangeError {
	return &RangeError{Name: "minValue", Value: value, Constraint: "must be smaller than or equal to 'maxValue'"}
}

// NewMaxValueError returns a 'RangeError' for an upper bound which is negative.
func NewMaxValueError(value any) *RangeError {
	return &RangeError{Name: "maxValue", Value: value, Constraint: "must be greater than or equal to 0"}
}

func (r *RangeError) Error() string {
	return fmt.Sprintf("'%s' (%v) %s", r.Name, r.Value, r.Constraint)
}

// IsRangeError returns a boolean indicating whether the given error is a 'RangeError'.
func IsRangeError(err error) bool {
	var rangeErr *RangeError
	return errors.As(err, &rangeErr)
}
