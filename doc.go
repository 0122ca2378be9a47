// Package guidetree builds guide trees for progressive multiple sequence
// alignment.
//
// A guide tree is a binary tree whose leaves partition the input sequences
// into groups. An aligner walks it bottom-up, aligning each leaf group and
// then merging sibling profiles.
//
// # Quick Start
//
//	b := guidetree.New()
//	root, err := b.Build(ctx, guidetree.SequenceSlice(seqs))
//
// # Pipeline
//
// Build runs these phases in order:
//
//  1. An AnchorSelector picks a small set of anchor sequences.
//  2. A DistanceEstimator embeds every sequence by its distance to each
//     anchor.
//  3. Bisecting 2-means with randomized restarts splits the embedding until
//     every set is smaller than the leaf size.
//  4. Optional merge passes (WithMerge) collapse sibling leaves that contain
//     a pair within an exact edit-distance threshold.
//  5. The finished tree is checked to partition {0, ..., N-1} and, with
//     WithStore, saved to a blob store.
//
// BuildUPGMA is the exact alternative for small inputs: it computes all
// pairwise edit distances and joins clusters by average linkage.
//
// # Determinism
//
// The splitter draws from a seeded generator (WithSeed) in a fixed order.
// Equal inputs, options and seeds produce equal trees.
//
// # Storage
//
// Trees are encoded by package codec and stored through package blobstore
// (local disk, memory, MinIO or S3). See package persistence for loading
// saved trees.
package guidetree
