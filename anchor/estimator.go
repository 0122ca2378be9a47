package anchor

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/hupe1980/guidetree/editdist"
	"github.com/hupe1980/guidetree/embedding"
	"github.com/hupe1980/guidetree/sequence"
	"golang.org/x/sync/errgroup"
)

// ErrNoAnchors is returned when Estimate is called without anchors.
var ErrNoAnchors = errors.New("anchor: no anchors")

// EditDistanceEstimator embeds every sequence by its edit distance to each
// anchor, divided by the longer of the two lengths. Entries lie in [0, 1].
type EditDistanceEstimator struct {
	// Kernel computes the directional distances. Zero value is
	// editdist.Kernel{}.
	Kernel editdist.DistanceKernel

	// Workers bounds the rows computed concurrently. 0 means GOMAXPROCS.
	Workers int
}

// Estimate returns the N×K anchor embedding of seqs.
func (e EditDistanceEstimator) Estimate(ctx context.Context, seqs sequence.Sequences, anchors []int) (*embedding.Matrix, error) {
	n := seqs.Len()
	if n == 0 {
		return nil, ErrNoSequences
	}
	if len(anchors) == 0 {
		return nil, ErrNoAnchors
	}
	for _, a := range anchors {
		if a < 0 || a >= n {
			return nil, fmt.Errorf("anchor: index %d out of range [0, %d)", a, n)
		}
	}

	kernel := e.Kernel
	if kernel == nil {
		kernel = editdist.Kernel{}
	}
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make([][]float32, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := seqs.Seq(i)
			row := make([]float32, len(anchors))
			for j, a := range anchors {
				d, err := normalized(kernel, s, seqs.Seq(a))
				if err != nil {
					return fmt.Errorf("anchor: sequence %d to anchor %d: %w", i, a, err)
				}
				row[j] = d
			}
			rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return embedding.FromRows(rows)
}

func normalized(k editdist.DistanceKernel, a, b []byte) (float32, error) {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0, nil
	}
	ab, err := k.Distance(a, b)
	if err != nil {
		return 0, err
	}
	ba, err := k.Distance(b, a)
	if err != nil {
		return 0, err
	}
	return float32(max(ab, ba)) / float32(longest), nil
}
