// Package tree defines the binary guide tree produced by the builders.
//
// A Node is either a leaf, which owns a slice of sample (sequence) indices,
// or an internal node with exactly two children and no samples. Parents
// exclusively own their children; a tree has no cycles and no shared
// subtrees.
//
// The leaves of a finished tree partition {0, …, N−1}: every sample appears
// in exactly one leaf. Validate checks this invariant.
package tree
