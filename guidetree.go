package guidetree

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/guidetree/editdist"
	"github.com/hupe1980/guidetree/embedding"
	"github.com/hupe1980/guidetree/internal/kmeans"
	"github.com/hupe1980/guidetree/merge"
	"github.com/hupe1980/guidetree/persistence"
	"github.com/hupe1980/guidetree/rng"
	"github.com/hupe1980/guidetree/sequence"
	"github.com/hupe1980/guidetree/tree"
	"github.com/hupe1980/guidetree/upgma"
	"golang.org/x/time/rate"
)

// Sequences is the read-only input of a build.
type Sequences = sequence.Sequences

// SequenceSlice adapts [][]byte to Sequences.
type SequenceSlice = sequence.Slice

// AnchorSelector chooses the anchor sequences of the embedding.
type AnchorSelector interface {
	SelectAnchors(ctx context.Context, seqs Sequences) ([]int, error)
}

// DistanceEstimator embeds every sequence by its distance to each anchor.
// The returned matrix must have one row per sequence.
type DistanceEstimator interface {
	Estimate(ctx context.Context, seqs Sequences, anchors []int) (*embedding.Matrix, error)
}

// Builder constructs guide trees. A Builder is safe for concurrent use as
// long as its collaborators are; every build uses its own random source.
type Builder struct {
	opts options
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	return &Builder{opts: applyOptions(opts)}
}

// Build clusters seqs by bisecting k-means over an anchor embedding and
// returns the guide tree. Leaves partition {0, ..., N-1}.
func (b *Builder) Build(ctx context.Context, seqs Sequences) (*tree.Node, error) {
	return b.run(ctx, seqs, "kmeans", b.cluster)
}

// BuildUPGMA builds the tree by UPGMA over the full pairwise edit-distance
// matrix. Cost is quadratic in N; meant for small inputs.
func (b *Builder) BuildUPGMA(ctx context.Context, seqs Sequences) (*tree.Node, error) {
	return b.run(ctx, seqs, "upgma", b.agglomerate)
}

func (b *Builder) run(ctx context.Context, seqs Sequences, name string, build func(context.Context, Sequences, *Logger) (*tree.Node, error)) (*tree.Node, error) {
	start := time.Now()
	log := b.opts.logger.WithBuild(name).WithSeed(b.opts.seed)

	n := 0
	if seqs != nil {
		n = seqs.Len()
	}

	root, err := b.build(ctx, seqs, n, log, build)

	leaves := 0
	if err == nil {
		leaves = root.NumLeaves()
	}
	elapsed := time.Since(start)
	b.opts.metricsCollector.RecordBuild(n, leaves, elapsed, err)
	log.LogBuild(ctx, n, leaves, elapsed, err)

	if err != nil {
		return nil, err
	}
	return root, nil
}

func (b *Builder) build(ctx context.Context, seqs Sequences, n int, log *Logger, build func(context.Context, Sequences, *Logger) (*tree.Node, error)) (*tree.Node, error) {
	if n == 0 {
		return nil, ErrNoSequences
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := build(ctx, seqs, log)
	if err != nil {
		return nil, err
	}

	if err := b.merge(ctx, root, seqs, log); err != nil {
		return nil, err
	}

	if err := tree.Validate(root, n); err != nil {
		return nil, err
	}

	if b.opts.store != nil {
		err := persistence.Save(ctx, b.opts.store, b.opts.storeName, root, func(o *persistence.Options) {
			o.Codec = b.opts.codec
		})
		log.LogSave(ctx, b.opts.storeName, err)
		if err != nil {
			return nil, &PhaseError{Phase: "save", cause: err}
		}
	}
	return root, nil
}

func (b *Builder) cluster(ctx context.Context, seqs Sequences, log *Logger) (*tree.Node, error) {
	n := seqs.Len()

	var anchors []int
	err := phase(ctx, log, "select anchors", func() error {
		var err error
		anchors, err = b.opts.selector.SelectAnchors(ctx, seqs)
		return err
	})
	if err != nil {
		return nil, err
	}

	var m *embedding.Matrix
	err = phase(ctx, log.WithCount(len(anchors)), "estimate distances", func() error {
		var err error
		if m, err = b.opts.estimator.Estimate(ctx, seqs, anchors); err != nil {
			return err
		}
		if m.Rows() != n {
			return &ErrDimensionMismatch{Expected: n, Actual: m.Rows()}
		}
		return m.Validate()
	})
	if err != nil {
		return nil, err
	}

	samples := make([]int, n)
	for i := range samples {
		samples[i] = i
	}

	progress := rate.Sometimes{Interval: time.Second}

	var root *tree.Node
	err = phase(ctx, log, "bisecting k-means", func() error {
		var err error
		root, err = kmeans.Split(m, samples, rng.New(b.opts.seed), func(o *kmeans.Options) {
			o.LeafSize = b.opts.leafSize
			o.Attempts = b.opts.attempts
			o.MaxIterations = b.opts.maxIterations
			o.OnSplit = func(s kmeans.SplitStats) {
				b.opts.metricsCollector.RecordSplit(s.Samples, s.Iterations, s.Degenerate)
				progress.Do(func() {
					log.DebugContext(ctx, "split",
						"samples", s.Samples,
						"left", s.Left,
						"right", s.Right,
						"iterations", s.Iterations,
						"degenerate", s.Degenerate,
					)
				})
			}
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (b *Builder) agglomerate(ctx context.Context, seqs Sequences, log *Logger) (*tree.Node, error) {
	var dm [][]float32
	err := phase(ctx, log, "pairwise distances", func() error {
		var err error
		dm, err = editdist.PairwiseMatrix(ctx, seqs, b.opts.kernel, func(o *editdist.Options) {
			o.Workers = b.opts.workers
			o.Logger = log.Logger
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	samples := make([]int, seqs.Len())
	for i := range samples {
		samples[i] = i
	}

	var root *tree.Node
	err = phase(ctx, log, "upgma", func() error {
		var err error
		root, err = upgma.Build(dm, samples)
		return err
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (b *Builder) merge(ctx context.Context, root *tree.Node, seqs Sequences, log *Logger) error {
	for pass := 0; pass < b.opts.mergePasses; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		merged, err := merge.Pass(root, seqs, b.opts.kernel, b.opts.mergeThreshold)
		elapsed := time.Since(start)

		b.opts.metricsCollector.RecordMerge(merged, elapsed, err)
		log.LogMerge(ctx, pass, merged, elapsed, err)
		if err != nil {
			return &PhaseError{Phase: fmt.Sprintf("merge pass %d", pass), cause: err}
		}
		if merged == 0 {
			return nil
		}
	}
	return nil
}

// phase runs fn, logs its duration and wraps a failure with the phase name.
// Context errors are returned unwrapped.
func phase(ctx context.Context, log *Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	log.LogPhase(ctx, name, time.Since(start), err)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return &PhaseError{Phase: name, cause: err}
}
