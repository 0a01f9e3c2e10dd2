package interpol

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidInputError is returned by the constructors when the anchors and
// values can't be interpolated at all: mismatched counts, too few anchors, or
// values of inconsistent length. It is returned before any geometry is
// computed.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidInputf(format string, args ...interface{}) error {
	return errors.WithStack(&InvalidInputError{Reason: fmt.Sprintf(format, args...)})
}

// GeometryComputationError wraps a failure of a geometry collaborator, such as
// triangulating a set of collinear anchors. The collaborator's error is
// available unchanged through Unwrap (and Cause, for github.com/pkg/errors).
type GeometryComputationError struct {
	Op  string
	Err error
}

func (e *GeometryComputationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *GeometryComputationError) Unwrap() error {
	return e.Err
}

func (e *GeometryComputationError) Cause() error {
	return e.Err
}

// Check the invariants shared by all constructors, and return the dimension
// of the values.
func validate(points []Point, values []Value) (int, error) {
	if len(points) != len(values) {
		return 0, invalidInputf("got %d anchor points but %d anchor values", len(points), len(values))
	}
	if len(points) < 3 {
		return 0, invalidInputf("at least 3 anchor points must be specified, got %d", len(points))
	}
	dim := len(values[0])
	if dim < 1 {
		return 0, invalidInputf("anchor values must have at least one component")
	}
	for i, v := range values {
		if len(v) != dim {
			return 0, invalidInputf("anchor value %d has %d components, expected %d", i, len(v), dim)
		}
	}
	return dim, nil
}
