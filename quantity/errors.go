package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when a unit name is not registered.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownDimension is returned when a dimension name is not registered.
	ErrUnknownDimension = errors.New("unknown dimension")
)

// MismatchError reports an operation attempted on two different dimensions.
type MismatchError struct {
	// Op is the attempted operation, e.g. "add" or "convert".
	Op    string
	Left  string
	Right string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot %s %s and %s: dimension mismatch", e.Op, e.Left, e.Right)
}

// NoOperationError reports a cross-dimension operation missing from the
// operation graph.
type NoOperationError struct {
	Left  string
	Op    Operator
	Right string
}

func (e *NoOperationError) Error() string {
	return fmt.Sprintf("no operation %s %s %s is declared", e.Left, e.Op, e.Right)
}
