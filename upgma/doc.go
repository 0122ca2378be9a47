// Package upgma builds a guide tree by unweighted average-linkage
// agglomeration (UPGMA) over a full pairwise distance matrix.
//
// Build is exact and O(N³); it is meant for small inputs where computing all
// pairwise distances is affordable.
package upgma
