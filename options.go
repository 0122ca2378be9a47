package guidetree

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/hupe1980/guidetree/anchor"
	"github.com/hupe1980/guidetree/blobstore"
	"github.com/hupe1980/guidetree/codec"
	"github.com/hupe1980/guidetree/editdist"
	"github.com/hupe1980/guidetree/internal/kmeans"
	"github.com/hupe1980/guidetree/merge"
	"github.com/hupe1980/guidetree/rng"
)

type options struct {
	seed          uint64
	leafSize      int
	attempts      int
	maxIterations int

	mergeThreshold int
	mergePasses    int

	selector  AnchorSelector
	estimator DistanceEstimator
	kernel    merge.Kernel
	workers   int

	store     blobstore.BlobStore
	storeName string
	codec     codec.Codec

	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Builder.
type Option func(*options)

// WithSeed sets the seed of the random source used by the splitter.
// Equal seeds and inputs produce equal trees.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLeafSize sets the sample count below which a set is kept as one leaf.
func WithLeafSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.leafSize = n
		}
	}
}

// WithAttempts sets the number of randomized restarts per split.
func WithAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.attempts = n
		}
	}
}

// WithMaxIterations caps the Lloyd iterations of a single restart.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithMerge enables up to passes exact-distance merge passes after
// clustering. Sibling leaves whose closest pair is within threshold edits
// are collapsed into one leaf. Passes stop early once a pass merges nothing.
//
// Merging is off by default.
func WithMerge(threshold, passes int) Option {
	return func(o *options) {
		o.mergeThreshold = threshold
		o.mergePasses = passes
	}
}

// WithAnchorSelector replaces the default anchor selector
// (anchor.StridedSelector).
func WithAnchorSelector(s AnchorSelector) Option {
	return func(o *options) {
		o.selector = s
	}
}

// WithDistanceEstimator replaces the default estimator
// (anchor.EditDistanceEstimator using the configured kernel).
func WithDistanceEstimator(e DistanceEstimator) Option {
	return func(o *options) {
		o.estimator = e
	}
}

// WithKernel sets the edit-distance kernel used by merge passes, the
// default estimator and BuildUPGMA.
func WithKernel(k merge.Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithWorkers bounds the goroutines used for distance computations.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithStore persists every finished tree under name in store.
func WithStore(store blobstore.BlobStore, name string) Option {
	return func(o *options) {
		o.store = store
		o.storeName = name
	}
}

// WithCodec configures the codec used when persisting trees.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression persists trees with the binary codec and the given block
// compression.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.codec = codec.Binary{Compression: c}
	}
}

// WithMetricsCollector sets a custom metrics collector for monitoring.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &guidetree.BasicMetricsCollector{}
//	b := guidetree.New(guidetree.WithMetricsCollector(metrics))
//	// ... build trees ...
//	stats := metrics.GetStats()
//	fmt.Printf("Builds: %d, Merged: %d\n", stats.BuildCount, stats.Merged)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger sets a custom structured logger.
// Pass nil to disable logging (uses NoopLogger).
//
// Example:
//
//	logger := guidetree.NewJSONLogger(slog.LevelInfo)
//	b := guidetree.New(guidetree.WithLogger(logger))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLogLevel sets the log level for the default text logger.
// This is a convenience function that creates a text logger with the specified level.
//
// Example:
//
//	b := guidetree.New(guidetree.WithLogLevel(slog.LevelDebug))
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
		o.logger = &Logger{Logger: slog.New(handler)}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		seed:          rng.DefaultSeed,
		leafSize:      kmeans.DefaultLeafSize,
		attempts:      kmeans.DefaultAttempts,
		maxIterations: kmeans.DefaultMaxIterations,
		workers:       runtime.GOMAXPROCS(0),
		codec:         codec.Default,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.kernel == nil {
		o.kernel = editdist.Kernel{}
	}
	if o.selector == nil {
		o.selector = anchor.StridedSelector{}
	}
	if o.estimator == nil {
		o.estimator = anchor.EditDistanceEstimator{Kernel: o.kernel, Workers: o.workers}
	}
	return o
}
