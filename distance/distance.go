package distance

import (
	"github.com/hupe1980/guidetree/internal/simd"
)

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return simd.SquaredL2(a, b)
}

// Accumulate adds src element-wise into dst. Only the first len(dst)
// elements of src are read.
func Accumulate(dst, src []float32) {
	simd.AddInPlace(dst, src)
}

// Kernel reports the name of the active kernel implementation.
func Kernel() string {
	return simd.ActiveISA().String()
}
