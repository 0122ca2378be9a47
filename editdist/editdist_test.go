package editdist

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/guidetree/sequence"
	"github.com/hupe1980/guidetree/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference is the textbook O(len(a)·len(b)) dynamic program.
func reference(a, b []byte) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, sub)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func TestDistance_Cases(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"both empty", "", "", 0},
		{"empty pattern", "", "ACGT", 4},
		{"empty text", "ACGT", "", 4},
		{"equal", "ACGTACGT", "ACGTACGT", 0},
		{"substitution", "ACGT", "AGGT", 1},
		{"insertion", "ACGT", "ACGGT", 1},
		{"deletion", "ACGGT", "ACGT", 1},
		{"kitten", "kitten", "sitting", 3},
		{"disjoint", "AAAA", "TTTTTT", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance([]byte(tt.a), []byte(tt.b)))
		})
	}
}

func TestDistance_MatchesReference(t *testing.T) {
	r := testutil.NewRNG(17)

	for i := 0; i < 300; i++ {
		a := r.Sequence(r.Intn(MaxWidth + 1))
		var b []byte
		if i%2 == 0 {
			b = r.Mutate(a, r.Intn(20))
		} else {
			b = r.Sequence(r.Intn(300))
		}
		require.Equal(t, reference(a, b), Distance(a, b), "len(a)=%d len(b)=%d", len(a), len(b))
	}
}

func TestDistance_WordBoundaries(t *testing.T) {
	r := testutil.NewRNG(5)

	for _, m := range []int{1, 63, 64, 65, 127, 128, 129, 255, 256} {
		a := r.Sequence(m)
		b := r.Mutate(a, 7)
		assert.Equal(t, reference(a, b), Distance(a, b), "m=%d", m)
	}
}

func TestDistance_TruncatesPattern(t *testing.T) {
	r := testutil.NewRNG(9)
	a := r.Sequence(400)
	b := r.Sequence(120)

	assert.Equal(t, reference(a[:MaxWidth], b), Distance(a, b))

	// Identical prefixes up to the width are indistinguishable to the pattern.
	tail := append(bytes.Clone(a[:MaxWidth]), r.Sequence(50)...)
	assert.Zero(t, Distance(tail, a[:MaxWidth]))
	assert.Equal(t, 50, Distance(a[:MaxWidth], tail))
	assert.Equal(t, 50, Symmetric(tail, a[:MaxWidth]))
}

func TestKernel_Width(t *testing.T) {
	a := []byte("ACGTACGTTT")
	b := []byte("ACGTACGT")

	d, err := Kernel{}.Distance(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = Kernel{Width: 8}.Distance(a, b)
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, w := range []int{-1, MaxWidth + 1} {
		_, err = Kernel{Width: w}.Distance(a, b)
		assert.ErrorIs(t, err, ErrWidth)
	}
}

type failingKernel struct{ err error }

func (k failingKernel) Distance(a, b []byte) (int, error) { return 0, k.err }

func TestPairwiseMatrix(t *testing.T) {
	r := testutil.NewRNG(21)
	seqs, _ := r.SequenceFamilies(3, 4, 80, 5)

	dm, err := PairwiseMatrix(context.Background(), sequence.Slice(seqs), Kernel{}, func(o *Options) {
		o.Workers = 3
	})
	require.NoError(t, err)
	require.Len(t, dm, len(seqs))

	for i := range seqs {
		require.Len(t, dm[i], len(seqs))
		assert.Zero(t, dm[i][i])
		for j := range seqs {
			assert.Equal(t, dm[i][j], dm[j][i])
			if i != j {
				assert.Equal(t, float32(Symmetric(seqs[i], seqs[j])), dm[i][j])
			}
		}
	}
}

func TestPairwiseMatrix_KernelError(t *testing.T) {
	boom := errors.New("boom")
	seqs := sequence.Slice{[]byte("A"), []byte("C"), []byte("G")}

	_, err := PairwiseMatrix(context.Background(), seqs, failingKernel{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestPairwiseMatrix_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seqs := sequence.Slice{[]byte("A"), []byte("C"), []byte("G")}
	_, err := PairwiseMatrix(ctx, seqs, Kernel{})
	assert.ErrorIs(t, err, context.Canceled)
}
