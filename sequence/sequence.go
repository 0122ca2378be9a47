// Package sequence defines the read-only view of input sequences shared by
// the guide-tree builders and distance kernels.
package sequence

// Sequences gives indexed access to N sequences. Implementations must be
// safe for concurrent reads.
type Sequences interface {
	Len() int
	Seq(i int) []byte
}

// Slice adapts a [][]byte to Sequences.
type Slice [][]byte

func (s Slice) Len() int { return len(s) }

func (s Slice) Seq(i int) []byte { return s[i] }

// Lengths returns the length of every sequence.
func Lengths(seqs Sequences) []int {
	lens := make([]int, seqs.Len())
	for i := range lens {
		lens[i] = len(seqs.Seq(i))
	}
	return lens
}
