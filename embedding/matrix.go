package embedding

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/guidetree/internal/simd"
)

var (
	// ErrEmpty is returned when a matrix would have no rows or no anchors.
	ErrEmpty = errors.New("embedding: matrix must have at least one row and one anchor")

	// ErrNonFinite is returned by Validate when a value is NaN or infinite.
	ErrNonFinite = errors.New("embedding: non-finite value")
)

// ErrRaggedRow indicates a row whose length differs from the anchor count.
type ErrRaggedRow struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRaggedRow) Error() string {
	return fmt.Sprintf("embedding: row %d has %d values, expected %d", e.Row, e.Actual, e.Expected)
}

// Matrix is an immutable N×K float32 matrix with lane-padded rows.
type Matrix struct {
	rows    int
	anchors int
	stride  int
	data    []float32
}

// PaddedWidth rounds k up to the next multiple of the kernel lane width.
func PaddedWidth(k int) int {
	return (k + simd.Lanes - 1) / simd.Lanes * simd.Lanes
}

// New builds a matrix with n rows and k anchors, filling each row with fill.
// fill receives the row index and a zeroed destination of length k.
func New(n, k int, fill func(row int, dst []float32)) (*Matrix, error) {
	if n <= 0 || k <= 0 {
		return nil, ErrEmpty
	}

	m := &Matrix{
		rows:    n,
		anchors: k,
		stride:  PaddedWidth(k),
	}
	m.data = make([]float32, n*m.stride)

	if fill != nil {
		for i := 0; i < n; i++ {
			fill(i, m.data[i*m.stride:i*m.stride+k])
		}
	}

	return m, nil
}

// FromRows copies rows into a new matrix. All rows must have the same length.
func FromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	k := len(rows[0])
	for i, r := range rows {
		if len(r) != k {
			return nil, &ErrRaggedRow{Row: i, Expected: k, Actual: len(r)}
		}
	}

	return New(len(rows), k, func(i int, dst []float32) {
		copy(dst, rows[i])
	})
}

// Rows returns N, the number of sequences.
func (m *Matrix) Rows() int { return m.rows }

// Anchors returns K, the number of anchors (unpadded row width).
func (m *Matrix) Anchors() int { return m.anchors }

// Stride returns the padded row width.
func (m *Matrix) Stride() int { return m.stride }

// Row returns the K anchor distances of sequence i.
// The returned slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float32 {
	off := i * m.stride
	return m.data[off : off+m.anchors : off+m.anchors]
}

// At returns the distance from sequence i to anchor j.
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.stride+j]
}

// Validate reports the first non-finite value, if any. Non-finite values
// keep Lloyd iterations from converging.
func (m *Matrix) Validate() error {
	for i := 0; i < m.rows; i++ {
		for j, v := range m.Row(i) {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w at row %d, anchor %d", ErrNonFinite, i, j)
			}
		}
	}
	return nil
}
