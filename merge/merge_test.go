package merge

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/guidetree/editdist"
	"github.com/hupe1980/guidetree/sequence"
	"github.com/hupe1980/guidetree/testutil"
	"github.com/hupe1980/guidetree/tree"
	"github.com/hupe1980/guidetree/upgma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingKernel struct {
	calls int
	err   error
}

func (k *countingKernel) Distance(a, b []byte) (int, error) {
	k.calls++
	if k.err != nil {
		return 0, k.err
	}
	return editdist.Distance(a, b), nil
}

func pair(left, right []int) *tree.Node {
	return tree.NewInternal(tree.NewLeaf(left), tree.NewLeaf(right))
}

var exampleSeqs = sequence.Slice{
	[]byte("AAAAAAAA"),
	[]byte("CCCCCCCC"),
	[]byte("AAAAAAAT"),
	[]byte("GGGGGGGG"),
}

func TestPass_Example(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		merged    int
	}{
		{"within threshold", 1, 1},
		{"no exact pair", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := pair([]int{0, 1}, []int{2, 3})

			merged, err := Pass(root, exampleSeqs, editdist.Kernel{}, tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.merged, merged)

			if tt.merged == 0 {
				require.False(t, root.IsLeaf())
				assert.Equal(t, []int{0, 1}, root.Left.Samples)
				assert.Equal(t, []int{2, 3}, root.Right.Samples)
				return
			}
			require.True(t, root.IsLeaf())
			assert.Equal(t, []int{0, 1, 2, 3}, root.Samples)
			assert.Equal(t, 4, root.Size)
		})
	}
}

func TestPass_Cascades(t *testing.T) {
	seqs := sequence.Slice{
		[]byte("ACGTACGT"),
		[]byte("ACGTACGA"),
		[]byte("ACGTACTA"),
	}
	root := tree.NewInternal(pair([]int{0}, []int{1}), tree.NewLeaf([]int{2}))

	merged, err := Pass(root, seqs, editdist.Kernel{}, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, merged)
	require.True(t, root.IsLeaf())
	assert.Equal(t, []int{0, 1, 2}, root.Samples)
}

func TestPass_FirstHit(t *testing.T) {
	seqs := sequence.Slice{
		[]byte("ACGT"),
		[]byte("ACGT"),
		[]byte("ACGT"),
		[]byte("ACGT"),
	}
	k := &countingKernel{}

	merged, err := Pass(pair([]int{0, 1}, []int{2, 3}), seqs, k, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, merged)
	assert.Equal(t, 2, k.calls, "scan must stop at the first qualifying pair")
}

func TestPass_LeafRoot(t *testing.T) {
	k := &countingKernel{}
	merged, err := Pass(tree.NewLeaf([]int{0, 1, 2}), exampleSeqs, k, 100)
	require.NoError(t, err)

	assert.Zero(t, merged)
	assert.Zero(t, k.calls)
}

func TestPass_KernelError(t *testing.T) {
	boom := errors.New("boom")
	root := pair([]int{0, 1}, []int{2, 3})

	merged, err := Pass(root, exampleSeqs, &countingKernel{err: boom}, 1)
	require.ErrorIs(t, err, boom)

	assert.Zero(t, merged)
	assert.False(t, root.IsLeaf())
}

func TestPass_Idempotent(t *testing.T) {
	r := testutil.NewRNG(8)
	raw, _ := r.SequenceFamilies(4, 5, 60, 3)
	seqs := sequence.Slice(raw)

	dm, err := editdist.PairwiseMatrix(context.Background(), seqs, editdist.Kernel{})
	require.NoError(t, err)
	root, err := upgma.Build(dm, testutil.Range(seqs.Len()))
	require.NoError(t, err)

	for _, threshold := range []int{2, 6} {
		first, err := Pass(root, seqs, editdist.Kernel{}, threshold)
		require.NoError(t, err)
		require.NoError(t, tree.Validate(root, seqs.Len()))

		second, err := Pass(root, seqs, editdist.Kernel{}, threshold)
		require.NoError(t, err)
		assert.Zero(t, second, "threshold %d: first pass merged %d", threshold, first)
	}
}
