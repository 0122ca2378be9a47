// Package editdist computes unit-cost edit distances between byte sequences
// with a bit-parallel kernel (Myers' algorithm in Hyyrö's block form).
//
// The kernel packs up to MaxWidth symbols of the first argument into machine
// words, so the distance is asymmetric for long inputs: Distance(a, b) only
// sees the first MaxWidth symbols of a but all of b. Callers that need a
// symmetric value take the maximum over both argument orders, as Symmetric
// and PairwiseMatrix do.
package editdist
