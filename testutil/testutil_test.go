package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.LessOrEqual(t, v[0][0], float32(1.0))
	assert.GreaterOrEqual(t, v[1][0], float32(0.0))
}

func TestClusteredVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.ClusteredVectors(100, 32, 5, 0.1)

	assert.Equal(t, 100, len(v))
	assert.Equal(t, 32, len(v[0]))
}

func TestIdenticalVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.IdenticalVectors(4, 3)
	assert.Len(t, v, 4)
	assert.Equal(t, v[0], v[3])
	v[0][0] = 42
	assert.NotEqual(t, v[0], v[1], "rows must not share storage")
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVectors(1, 10)

	rng.Reset()
	v2 := rng.UniformVectors(1, 10)

	assert.Equal(t, v1, v2)
}

func TestMutate(t *testing.T) {
	rng := NewRNG(4711)
	root := rng.Sequence(50)

	assert.Equal(t, root, rng.Mutate(root, 0))

	m := rng.Mutate(root, 3)
	assert.InDelta(t, len(root), len(m), 3)
	for _, b := range m {
		assert.Contains(t, DNA, string(b))
	}
}

func TestSequenceFamilies(t *testing.T) {
	rng := NewRNG(4711)

	seqs, family := rng.SequenceFamilies(3, 4, 40, 2)
	assert.Len(t, seqs, 12)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}, family)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Range(3))
	assert.Empty(t, Range(0))
}
