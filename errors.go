package guidetree

import (
	"errors"
	"fmt"

	"github.com/hupe1980/guidetree/embedding"
	"github.com/hupe1980/guidetree/internal/kmeans"
	"github.com/hupe1980/guidetree/tree"
)

var (
	// ErrNoSequences is returned when a build is started without input.
	ErrNoSequences = errors.New("guidetree: no sequences")

	// ErrNotConverged is returned when the splitter hits its iteration cap.
	// The returned error is a *ConvergenceError.
	ErrNotConverged = kmeans.ErrNotConverged

	// ErrNonFinite is returned when the anchor embedding contains NaN or
	// infinite values.
	ErrNonFinite = embedding.ErrNonFinite

	// ErrPartition is returned when a finished tree fails validation.
	ErrPartition = tree.ErrPartition
)

// ConvergenceError reports which split failed to converge.
type ConvergenceError = kmeans.ConvergenceError

// ErrDimensionMismatch indicates an embedding whose row count differs from
// the number of sequences.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("guidetree: embedding has %d rows, expected %d", e.Actual, e.Expected)
}

// PhaseError wraps the failure of one build phase.
type PhaseError struct {
	Phase string
	cause error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("guidetree: %s: %v", e.Phase, e.cause)
}

func (e *PhaseError) Unwrap() error { return e.cause }
