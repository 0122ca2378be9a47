package tree

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrMalformed is returned when a node has exactly one child, or an
	// internal node carries samples.
	ErrMalformed = errors.New("tree: malformed node")

	// ErrPartition is returned when the leaves do not partition the samples.
	ErrPartition = errors.New("tree: leaves do not partition samples")
)

// PartitionError describes how leaf sample sets violate the partition
// invariant.
type PartitionError struct {
	// Duplicates lists samples found in more than one leaf.
	Duplicates []int
	// Missing lists samples in [0, n) that no leaf holds.
	Missing []int
	// OutOfRange lists samples outside [0, n).
	OutOfRange []int
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("%s: %d duplicate, %d missing, %d out of range",
		ErrPartition, len(e.Duplicates), len(e.Missing), len(e.OutOfRange))
}

func (e *PartitionError) Unwrap() error { return ErrPartition }

// Bitmap returns the union of the leaf sample sets below n.
func (n *Node) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, leaf := range n.Leaves() {
		for _, s := range leaf.Samples {
			bm.Add(uint32(s))
		}
	}
	return bm
}

// Validate checks that root is well formed and that its leaves partition
// {0, …, n−1}.
func Validate(root *Node, n int) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrMalformed)
	}

	var shapeErr error
	root.Walk(func(c *Node, depth int) bool {
		if (c.Left == nil) != (c.Right == nil) {
			shapeErr = fmt.Errorf("%w: node at depth %d has one child", ErrMalformed, depth)
			return false
		}
		if !c.IsLeaf() && c.Samples != nil {
			shapeErr = fmt.Errorf("%w: internal node at depth %d owns samples", ErrMalformed, depth)
			return false
		}
		return shapeErr == nil
	})
	if shapeErr != nil {
		return shapeErr
	}

	seen := roaring.New()
	pe := &PartitionError{}
	for _, leaf := range root.Leaves() {
		for _, s := range leaf.Samples {
			if s < 0 || s >= n {
				pe.OutOfRange = append(pe.OutOfRange, s)
				continue
			}
			if !seen.CheckedAdd(uint32(s)) {
				pe.Duplicates = append(pe.Duplicates, s)
			}
		}
	}

	if seen.GetCardinality() != uint64(n) {
		all := roaring.New()
		all.AddRange(0, uint64(n))
		all.AndNot(seen)
		for _, s := range all.ToArray() {
			pe.Missing = append(pe.Missing, int(s))
		}
	}

	if len(pe.Duplicates) > 0 || len(pe.Missing) > 0 || len(pe.OutOfRange) > 0 {
		return pe
	}
	return nil
}

// Disjoint reports whether the leaf sample sets of a and b share no sample.
func Disjoint(a, b *Node) bool {
	return !a.Bitmap().Intersects(b.Bitmap())
}
