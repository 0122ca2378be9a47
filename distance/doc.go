// Package distance provides the anchor-space distance used by the guide-tree
// splitter.
//
// Functions dispatch to the kernels in internal/simd, which pick an 8-lane
// unrolled implementation on AVX2/AVX-512/NEON hardware.
//
// # Usage
//
//	d := distance.SquaredL2(row, centroid)
//	distance.Accumulate(sum, row)
package distance
