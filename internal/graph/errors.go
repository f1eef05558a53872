package graph

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph reports a computation with no operations and no inputs,
// where no value exists to return. An empty node list with at least one
// input is not an error: Evaluate returns the last input unchanged.
var ErrEmptyGraph = errors.New("computation graph is empty")

// ArityError reports a node that supplied the wrong number of predecessor
// indices for its declared operation. It is detected before the node's
// forward or backward rule runs.
type ArityError struct {
	Operation string // catalog name, e.g. "Add"
	Expected  int
	Actual    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity error in %s: expected %d argument(s), got %d", e.Operation, e.Expected, e.Actual)
}

// IndexError reports a predecessor index that references a tape position
// that does not exist yet. Indices are validated before any dereference.
type IndexError struct {
	Index    int // the offending index
	MaxIndex int // largest valid index at the point of use
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of bounds (max: %d)", e.Index, e.MaxIndex)
}

// checkArity validates a node's argument count against the catalog.
func checkArity(op Op, actual int) error {
	if expected := op.Arity(); actual != expected {
		return &ArityError{Operation: op.String(), Expected: expected, Actual: actual}
	}
	return nil
}

// checkIndices validates that every predecessor index addresses an existing
// tape position. tapeLen is the tape length at the node's evaluation point,
// so the check also enforces that nodes only reference earlier positions.
func checkIndices(args []int, tapeLen int) error {
	for _, idx := range args {
		if idx < 0 || idx >= tapeLen {
			return &IndexError{Index: idx, MaxIndex: tapeLen - 1}
		}
	}
	return nil
}
