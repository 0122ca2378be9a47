package kmeans

const (
	// DefaultLeafSize is the sample count below which a set is not split.
	DefaultLeafSize = 1000

	// DefaultAttempts is the number of randomized splits tried per call.
	DefaultAttempts = 50

	// DefaultMaxIterations caps Lloyd iterations of a single attempt.
	DefaultMaxIterations = 10000
)

// Options configures Split.
type Options struct {
	// LeafSize: sets with fewer samples are returned as leaves.
	LeafSize int

	// Attempts is the number of randomized restarts per split.
	Attempts int

	// MaxIterations caps Lloyd iterations per attempt. Hitting the cap
	// aborts the whole build with a *ConvergenceError.
	MaxIterations int

	// OnSplit, if set, receives statistics for every call that reached the
	// restart loop.
	OnSplit func(SplitStats)
}

// DefaultOptions returns the options used when Split is called without
// overrides.
func DefaultOptions() Options {
	return Options{
		LeafSize:      DefaultLeafSize,
		Attempts:      DefaultAttempts,
		MaxIterations: DefaultMaxIterations,
	}
}

// SplitStats describes one call of the splitter.
type SplitStats struct {
	// Samples is the size of the set being split.
	Samples int
	// Scores holds the score of every attempt in attempt order. Attempts
	// that left one side empty report +Inf.
	Scores []float32
	// Best is the index of the kept attempt, or -1 if the set became a leaf.
	Best int
	// Iterations is the total number of Lloyd iterations across attempts.
	Iterations int
	// Left and Right are the sizes of the kept halves.
	Left, Right int
	// Degenerate is true when all samples coincided in anchor space.
	Degenerate bool
}
