// Package testutil provides seeded generators for guide-tree tests.
//
// This package is intended for use in tests and benchmarks only.
//
// # Embeddings
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.ClusteredVectors(3000, 16, 3, 0.05)
//	m := testutil.MustMatrix(rows)
//
// # Sequences
//
//	seqs, family := rng.SequenceFamilies(4, 25, 120, 3)
package testutil
