// Package kmeans implements the bisecting 2-means splitter that builds guide
// trees from an anchor embedding.
//
// Each call tries up to Attempts randomized 2-way splits of its sample set,
// keeps the one with the lowest total assignment distance and recurses into
// both halves. Sample sets smaller than LeafSize, and sets whose points are
// indistinguishable in anchor space, become leaves.
package kmeans
