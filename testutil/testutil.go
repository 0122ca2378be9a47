package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/guidetree/embedding"
)

// DNA is the nucleotide alphabet used by the sequence generators.
const DNA = "ACGT"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors scattered around random centroids in
// [0, 1)^dim. Vector i belongs to cluster i % clusters.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float32) [][]float32 {
	centroids := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)

	for i := range num {
		centroid := centroids[i%clusters]
		vec := data[i*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = centroid[j] + float32(r.rand.NormFloat64())*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// IdenticalVectors returns num copies of one random vector.
func (r *RNG) IdenticalVectors(num, dim int) [][]float32 {
	base := r.UniformVectors(1, dim)[0]
	vectors := make([][]float32, num)
	for i := range vectors {
		vectors[i] = append([]float32(nil), base...)
	}
	return vectors
}

// Sequence returns a random DNA sequence of the given length.
func (r *RNG) Sequence(length int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := make([]byte, length)
	for i := range s {
		s[i] = DNA[r.rand.Intn(len(DNA))]
	}
	return s
}

// Mutate returns a copy of seq with edits random substitutions, insertions
// or deletions applied. The edit distance to seq is at most edits.
func (r *RNG) Mutate(seq []byte, edits int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]byte(nil), seq...)
	for e := 0; e < edits; e++ {
		switch op := r.rand.Intn(3); {
		case op == 0 && len(out) > 0:
			pos := r.rand.Intn(len(out))
			out[pos] = DNA[(indexOf(out[pos])+1+r.rand.Intn(len(DNA)-1))%len(DNA)]
		case op == 1:
			pos := r.rand.Intn(len(out) + 1)
			out = append(out[:pos], append([]byte{DNA[r.rand.Intn(len(DNA))]}, out[pos:]...)...)
		case len(out) > 0:
			pos := r.rand.Intn(len(out))
			out = append(out[:pos], out[pos+1:]...)
		}
	}
	return out
}

// SequenceFamilies generates families of related sequences: each family has
// a random root of the given length and perFamily members within edits of it.
// family[i] is the family index of sequence i; members are interleaved.
func (r *RNG) SequenceFamilies(families, perFamily, length, edits int) ([][]byte, []int) {
	roots := make([][]byte, families)
	for f := range roots {
		roots[f] = r.Sequence(length)
	}

	seqs := make([][]byte, 0, families*perFamily)
	family := make([]int, 0, families*perFamily)
	for i := 0; i < perFamily; i++ {
		for f, root := range roots {
			seqs = append(seqs, r.Mutate(root, edits))
			family = append(family, f)
		}
	}
	return seqs, family
}

// MustMatrix builds an embedding matrix from rows and panics on error.
func MustMatrix(rows [][]float32) *embedding.Matrix {
	m, err := embedding.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Range returns the samples 0..n-1.
func Range(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func indexOf(b byte) int {
	for i := 0; i < len(DNA); i++ {
		if DNA[i] == b {
			return i
		}
	}
	return 0
}
