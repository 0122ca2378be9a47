package upgma

import (
	"math"
	"testing"

	"github.com/hupe1980/guidetree/testutil"
	"github.com/hupe1980/guidetree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(id int) *tree.Node {
	n := tree.NewLeaf([]int{id})
	n.ID = id
	return n
}

func TestBuild_FourPoints(t *testing.T) {
	//      A  B  C  D
	dm := [][]float32{
		{0, 1, 4, 4},
		{1, 0, 4, 4},
		{4, 4, 0, 2},
		{4, 4, 2, 0},
	}

	root, err := Build(dm, []int{10, 11, 12, 13})
	require.NoError(t, err)

	want := tree.NewInternal(
		tree.NewInternal(leaf(10), leaf(11)),
		tree.NewInternal(leaf(12), leaf(13)),
	)
	assert.True(t, tree.Equal(want, root), "got:\n%s", root)
	assert.Equal(t, tree.NoID, root.ID)
	assert.Equal(t, 4, root.Size)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	dm := [][]float32{
		{0, 1, 4},
		{1, 0, 3},
		{4, 3, 0},
	}
	before := [][]float32{
		{0, 1, 4},
		{1, 0, 3},
		{4, 3, 0},
	}

	_, err := Build(dm, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, before, dm)
}

func TestBuild_Ties(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	tests := []struct {
		name string
		fill float32
	}{
		{"equal distances", 1},
		{"infinite distances", inf},
		{"nan distances", nan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := [][]float32{
				{0, tt.fill, tt.fill},
				{tt.fill, 0, tt.fill},
				{tt.fill, tt.fill, 0},
			}

			root, err := Build(dm, []int{0, 1, 2})
			require.NoError(t, err)

			want := tree.NewInternal(tree.NewInternal(leaf(0), leaf(1)), leaf(2))
			assert.True(t, tree.Equal(want, root), "got:\n%s", root)
		})
	}
}

func TestBuild_Single(t *testing.T) {
	root, err := Build([][]float32{{0}}, []int{7})
	require.NoError(t, err)

	require.True(t, root.IsLeaf())
	assert.Equal(t, []int{7}, root.Samples)
	assert.Equal(t, 7, root.ID)
}

func TestBuild_Partition(t *testing.T) {
	const n = 60
	r := testutil.NewRNG(3)
	points := r.UniformVectors(n, 3)

	dm := make([][]float32, n)
	for i := range dm {
		dm[i] = make([]float32, n)
		for j := range dm[i] {
			for k := range points[i] {
				diff := points[i][k] - points[j][k]
				dm[i][j] += diff * diff
			}
		}
	}

	root, err := Build(dm, testutil.Range(n))
	require.NoError(t, err)

	require.NoError(t, tree.Validate(root, n))
	assert.Equal(t, n, root.NumLeaves())
	root.Walk(func(c *tree.Node, _ int) bool {
		if c.IsLeaf() {
			assert.Len(t, c.Samples, 1)
			assert.Equal(t, c.Samples[0], c.ID)
		} else {
			assert.Equal(t, tree.NoID, c.ID)
		}
		return true
	})
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dm      [][]float32
		samples []int
		want    error
	}{
		{"empty", nil, nil, ErrEmpty},
		{"row count", [][]float32{{0, 1}}, []int{0, 1}, ErrDimensionMismatch},
		{"ragged", [][]float32{{0, 1}, {1}}, []int{0, 1}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.dm, tt.samples)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDimensionError(t *testing.T) {
	_, err := Build([][]float32{{0, 1}, {1}}, []int{0, 1})

	var de *DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Row)
	assert.Equal(t, 2, de.Expected)
	assert.Equal(t, 1, de.Actual)
}
