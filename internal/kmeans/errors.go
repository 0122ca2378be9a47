package kmeans

import (
	"errors"
	"fmt"
)

// ErrNotConverged is returned when an attempt reaches the Lloyd iteration cap.
// It signals malformed input such as non-finite embedding values.
var ErrNotConverged = errors.New("kmeans: lloyd iterations did not converge")

// ConvergenceError reports which split failed to converge.
type ConvergenceError struct {
	Samples    int
	Attempt    int
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %d samples, attempt %d, %d iterations",
		ErrNotConverged, e.Samples, e.Attempt, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }
