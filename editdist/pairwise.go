package editdist

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hupe1980/guidetree/sequence"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DistanceKernel computes an edit distance, possibly asymmetric.
type DistanceKernel interface {
	Distance(a, b []byte) (int, error)
}

// Options configures PairwiseMatrix.
type Options struct {
	// Workers limits the number of rows computed concurrently.
	// Defaults to GOMAXPROCS.
	Workers int

	// Logger receives throttled progress messages. Nil disables them.
	Logger *slog.Logger

	// ProgressInterval is the minimum time between progress messages.
	ProgressInterval time.Duration
}

// DefaultOptions returns the default PairwiseMatrix options.
func DefaultOptions() Options {
	return Options{
		Workers:          runtime.GOMAXPROCS(0),
		ProgressInterval: 5 * time.Second,
	}
}

// PairwiseMatrix computes the symmetric all-pairs distance matrix of seqs,
// where entry (i, j) is max(k(i, j), k(j, i)). The diagonal is zero.
//
// Rows are fanned out over a bounded worker group; each worker fills the
// upper triangle of its own row and the lower triangle is mirrored once all
// rows are done. The first kernel error or context cancellation aborts the
// computation.
func PairwiseMatrix(ctx context.Context, seqs sequence.Sequences, kernel DistanceKernel, optFns ...func(*Options)) ([][]float32, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	n := seqs.Len()
	dm := make([][]float32, n)
	for i := range dm {
		dm[i] = make([]float32, n)
	}

	progress := rate.Sometimes{Interval: opts.ProgressInterval}
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			a := seqs.Seq(i)
			row := dm[i]
			for j := i + 1; j < n; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				b := seqs.Seq(j)
				ab, err := kernel.Distance(a, b)
				if err != nil {
					return err
				}
				ba, err := kernel.Distance(b, a)
				if err != nil {
					return err
				}
				row[j] = float32(max(ab, ba))
			}

			finished := done.Add(1)
			if opts.Logger != nil {
				progress.Do(func() {
					opts.Logger.Debug("pairwise distances", "rows_done", finished, "rows_total", n)
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dm[j][i] = dm[i][j]
		}
	}
	return dm, nil
}
