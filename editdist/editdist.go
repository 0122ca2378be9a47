package editdist

import (
	"errors"
	"fmt"
)

const (
	wordBits = 64

	// MaxWidth is the largest number of pattern symbols the kernel tracks.
	MaxWidth = 256

	maxWords = MaxWidth / wordBits
)

// ErrWidth is returned for a kernel width outside [1, MaxWidth].
var ErrWidth = errors.New("editdist: invalid width")

// Kernel is a bit-parallel edit-distance kernel. The zero value uses MaxWidth.
type Kernel struct {
	// Width caps the number of symbols of the first argument that take part
	// in the comparison. 0 means MaxWidth.
	Width int
}

// Distance returns the edit distance between the first Width symbols of a
// and all of b.
func (k Kernel) Distance(a, b []byte) (int, error) {
	width := k.Width
	if width == 0 {
		width = MaxWidth
	}
	if width < 0 || width > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrWidth, k.Width)
	}
	if len(a) > width {
		a = a[:width]
	}
	return distance(a, b), nil
}

// Distance is Kernel{}.Distance without the error return.
func Distance(a, b []byte) int {
	if len(a) > MaxWidth {
		a = a[:MaxWidth]
	}
	return distance(a, b)
}

// Symmetric returns max(Distance(a, b), Distance(b, a)).
func Symmetric(a, b []byte) int {
	return max(Distance(a, b), Distance(b, a))
}

// distance runs the block algorithm with a as the pattern (len(a) <= MaxWidth).
func distance(a, b []byte) int {
	m := len(a)
	if m == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return m
	}

	words := (m + wordBits - 1) / wordBits

	var peq [256][maxWords]uint64
	for i, c := range a {
		peq[c][i/wordBits] |= 1 << (i % wordBits)
	}

	var pv, mv [maxWords]uint64
	for w := 0; w < words; w++ {
		pv[w] = ^uint64(0)
	}

	last := uint64(1) << ((m - 1) % wordBits)
	score := m

	for _, c := range b {
		// Row 0 of a global alignment grows by one per text symbol.
		hin := 1
		for w := 0; w < words; w++ {
			mask := uint64(1) << (wordBits - 1)
			if w == words-1 {
				mask = last
			}
			pv[w], mv[w], hin = advance(pv[w], mv[w], peq[c][w], hin, mask)
		}
		score += hin
	}

	return score
}

// advance moves one block of vertical deltas one text column forward. hin is
// the horizontal delta entering the block's top row; the returned delta is the
// one leaving the row selected by mask.
func advance(pv, mv, eq uint64, hin int, mask uint64) (uint64, uint64, int) {
	xv := eq | mv
	if hin < 0 {
		eq |= 1
	}
	xh := (((eq & pv) + pv) ^ pv) | eq
	ph := mv | ^(xh | pv)
	mh := pv & xh

	hout := 0
	if ph&mask != 0 {
		hout = 1
	} else if mh&mask != 0 {
		hout = -1
	}

	ph <<= 1
	mh <<= 1
	if hin < 0 {
		mh |= 1
	} else if hin > 0 {
		ph |= 1
	}

	return mh | ^(xv | ph), ph & xv, hout
}
