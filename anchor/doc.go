// Package anchor provides the default anchor selection and anchor-distance
// estimation used to embed sequences before clustering.
//
// Each sequence is represented by its normalized edit distance to a small
// set of anchor sequences, so the clustering works on an N×K matrix instead
// of N×N pairwise distances.
package anchor
