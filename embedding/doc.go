// Package embedding holds the anchor embedding consumed by the guide-tree
// builders: an N×K matrix of estimated distances from every sequence to K
// anchor sequences.
//
// Rows are stored contiguously with a stride rounded up to a multiple of 8 so
// the distance kernels can process whole lanes. The padding is zero and never
// visible through Row. A Matrix is immutable once constructed and may be
// shared freely between goroutines.
package embedding
