// Package merge corrects a guide tree after construction by collapsing
// sibling leaves that hold at least one pair of near-identical sequences.
package merge
