// Package simd provides the vectorizable float32 kernels used by the
// guide-tree splitter.
//
// # Supported Platforms
//
//   - x86-64: AVX2, AVX-512 (8-lane unrolled kernel)
//   - ARM64: NEON (8-lane unrolled kernel)
//
// Runtime CPU feature detection selects the kernel. Set GUIDETREE_SIMD=generic
// to force the scalar fallback.
//
// # Operations
//
//   - Distance: SquaredL2
//   - Accumulation: AddInPlace
package simd
