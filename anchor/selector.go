package anchor

import (
	"context"
	"errors"
	"math/bits"
	"slices"

	"github.com/hupe1980/guidetree/sequence"
)

// ErrNoSequences is returned when anchors are requested for an empty input.
var ErrNoSequences = errors.New("anchor: no sequences")

// MinAnchors is the anchor count used for inputs where ⌊log2 N⌋² is smaller.
const MinAnchors = 32

// Count returns the number of anchors for n sequences:
// max(MinAnchors, ⌊log2 n⌋²), capped at n.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	l := bits.Len(uint(n)) - 1
	return min(n, max(MinAnchors, l*l))
}

// StridedSelector picks anchors at an even stride through the sequences
// sorted by decreasing length, so anchors cover the length distribution.
type StridedSelector struct {
	// N overrides the anchor count when positive.
	N int
}

// SelectAnchors returns the indices of the chosen anchors.
func (s StridedSelector) SelectAnchors(ctx context.Context, seqs sequence.Sequences) ([]int, error) {
	n := seqs.Len()
	if n == 0 {
		return nil, ErrNoSequences
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := Count(n)
	if s.N > 0 {
		count = min(s.N, n)
	}

	lens := sequence.Lengths(seqs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return lens[b] - lens[a]
	})

	stride := n / count
	anchors := make([]int, count)
	for i := range anchors {
		anchors[i] = order[i*stride]
	}
	return anchors, nil
}
