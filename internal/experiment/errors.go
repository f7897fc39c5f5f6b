package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrIterationLimit means a run hit its iteration cap before sorting.
	ErrIterationLimit = errors.New("experiment: iteration limit reached")

	ErrNoAlgorithm = errors.New("experiment: no algorithm given")

	ErrEmptySweep = errors.New("experiment: sweep has no points")
)

// RunError wraps a failure with the run it came from.
type RunError struct {
	Algorithm string
	Iteration int
	Wrapped   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s at iteration %d: %v", e.Algorithm, e.Iteration, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
