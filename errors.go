package idxarray

import (
	"fmt"
)

// ErrLengthMismatch is returned when a sequence imported into an Array does
// not hold exactly one element per slot.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d elements, got %d", e.Expected, e.Actual)
}
