package upgma

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/guidetree/tree"
)

var (
	// ErrEmpty is returned when there is nothing to cluster.
	ErrEmpty = errors.New("upgma: empty sample set")

	// ErrDimensionMismatch is returned when the matrix is not square or does
	// not match the number of samples.
	ErrDimensionMismatch = errors.New("upgma: dimension mismatch")
)

// DimensionError describes the offending row of a malformed matrix.
type DimensionError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %d rows for %d samples", ErrDimensionMismatch, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%s: row %d has %d columns, expected %d", ErrDimensionMismatch, e.Row, e.Actual, e.Expected)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// Build clusters samples using the symmetric distances in dm, where dm[i][j]
// is the distance between samples[i] and samples[j]. dm is copied; the
// caller's matrix is left untouched.
//
// Each step joins the closest pair of active clusters, scanning row-major and
// keeping the first strict minimum. The joined cluster takes the slot of the
// lower index and its distances become the plain mean of the two rows. Leaves
// carry ID = samples[i]; internal nodes keep tree.NoID.
func Build(dm [][]float32, samples []int) (*tree.Node, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmpty
	}
	if len(dm) != n {
		return nil, &DimensionError{Row: -1, Expected: n, Actual: len(dm)}
	}

	d := make([][]float32, n)
	for i, row := range dm {
		if len(row) != n {
			return nil, &DimensionError{Row: i, Expected: n, Actual: len(row)}
		}
		d[i] = append([]float32(nil), row...)
	}

	nodes := make([]*tree.Node, n)
	active := make([]bool, n)
	for i, s := range samples {
		leaf := tree.NewLeaf([]int{s})
		leaf.ID = s
		nodes[i] = leaf
		active[i] = true
	}

	for step := 0; step < n-1; step++ {
		a, b := closest(d, active)

		nodes[a] = tree.NewInternal(nodes[a], nodes[b])
		nodes[b] = nil
		active[b] = false

		for j := 0; j < n; j++ {
			if j == a {
				continue
			}
			d[a][j] = (d[a][j] + d[b][j]) * 0.5
			d[j][a] = d[a][j]
		}
		d[a][a] = 0
	}

	for i, ok := range active {
		if ok {
			return nodes[i], nil
		}
	}
	panic("upgma: no active cluster left")
}

// closest returns the active pair (a < b) with the smallest distance. When no
// pair has a finite distance the first two active clusters are returned.
func closest(d [][]float32, active []bool) (int, int) {
	best := float32(math.Inf(1))
	a, b := -1, -1
	for i := range d {
		if !active[i] {
			continue
		}
		for j := i + 1; j < len(d); j++ {
			if active[j] && d[i][j] < best {
				best = d[i][j]
				a, b = i, j
			}
		}
	}
	if a >= 0 {
		return a, b
	}

	for i := range active {
		if !active[i] {
			continue
		}
		if a < 0 {
			a = i
			continue
		}
		return a, i
	}
	panic("upgma: fewer than two active clusters")
}
