package heatmap

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid is returned when the input has no rows or no columns.
var ErrEmptyGrid = errors.New("grid must have at least one row and one column")

// ErrRaggedGrid is returned when the input rows have unequal lengths.
var ErrRaggedGrid = errors.New("grid rows must all have the same length")

// DegenerateRangeError is returned when the resolved value range has zero
// or negative span, e.g. a constant-valued grid without explicit distinct
// bounds. The range is never silently coerced to a default.
type DegenerateRangeError struct {
	Lo, Hi float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("value range [%g, %g] has no positive span", e.Lo, e.Hi)
}

// LabelCountMismatchError is returned when a tick-label sequence does not
// match the corresponding grid dimension.
type LabelCountMismatchError struct {
	Axis string // "x" or "y"
	Got  int
	Want int
}

func (e *LabelCountMismatchError) Error() string {
	return fmt.Sprintf("%s tick labels: got %d labels for %d cells", e.Axis, e.Got, e.Want)
}
