package kmeans

import (
	"math"

	"github.com/hupe1980/guidetree/distance"
	"github.com/hupe1980/guidetree/embedding"
	"github.com/hupe1980/guidetree/rng"
	"github.com/hupe1980/guidetree/tree"
)

// degenerateEpsilon: seeds closer than this on every anchor mean the whole
// set sits on one point.
const degenerateEpsilon = 1e-6

var inf = float32(math.Inf(1))

// result holds one attempt's assignment. The index arrays are sized to the
// parent set and only the first nl/nr entries are meaningful.
type result struct {
	left  []int
	right []int
	nl    int
	nr    int
	score float32
}

func newResult(n int) *result {
	return &result{
		left:  make([]int, n),
		right: make([]int, n),
		score: inf,
	}
}

func (r *result) oneSided() bool {
	return r.nl == 0 || r.nr == 0
}

type splitter struct {
	m    *embedding.Matrix
	rng  *rng.Source
	opts Options
}

// Split builds a guide tree over samples. samples must not be empty; the
// returned tree takes ownership of it (leaves alias sub-slices).
//
// Draws from r happen in a fixed order (one per attempt, calls in pre-order),
// so equal inputs and seeds produce equal trees.
func Split(m *embedding.Matrix, samples []int, r *rng.Source, optFns ...func(*Options)) (*tree.Node, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &splitter{m: m, rng: r, opts: opts}
	return s.split(samples)
}

func (s *splitter) split(samples []int) (*tree.Node, error) {
	if len(samples) == 0 {
		panic("kmeans: split of an empty sample set")
	}
	if len(samples) < s.opts.LeafSize {
		return tree.NewLeaf(samples), nil
	}

	k := s.m.Anchors()
	w := make([]float32, k)
	cl := make([]float32, k)
	cr := make([]float32, k)
	wl := make([]float32, k)
	wr := make([]float32, k)

	mean(w, s.m, samples)

	best := newResult(len(samples))
	tmp := newResult(len(samples))
	stats := SplitStats{
		Samples: len(samples),
		Scores:  make([]float32, 0, s.opts.Attempts),
		Best:    -1,
	}

	for attempt := 0; attempt < s.opts.Attempts; attempt++ {
		pick := samples[s.rng.Intn(len(samples))]
		copy(cl, s.m.Row(pick))
		for j := range cr {
			cr[j] = w[j] - (cl[j] - w[j])
		}

		if degenerate(cl, cr) {
			stats.Degenerate = true
			s.report(stats)
			return tree.NewLeaf(samples), nil
		}

		iters, err := s.lloyd(samples, cl, cr, wl, wr, tmp)
		stats.Iterations += iters
		if err != nil {
			err.Attempt = attempt
			return nil, err
		}

		score := tmp.score
		if tmp.oneSided() {
			score = inf
		}
		stats.Scores = append(stats.Scores, score)

		if score < best.score {
			tmp.score = score
			best, tmp = tmp, best
			stats.Best = attempt
		}
	}

	if stats.Best < 0 {
		s.report(stats)
		return tree.NewLeaf(samples), nil
	}

	stats.Left, stats.Right = best.nl, best.nr
	s.report(stats)

	left := best.left[:best.nl:best.nl]
	right := best.right[:best.nr:best.nr]

	n := tree.New()
	n.Size = len(samples)

	var err error
	if n.Left, err = s.split(left); err != nil {
		return nil, err
	}
	if n.Right, err = s.split(right); err != nil {
		return nil, err
	}
	return n, nil
}

// lloyd runs 2-means from the seeds cl and cr until the centroids stop
// changing. wl and wr are scratch; all four buffers are permuted by the
// swaps, none are reallocated. It returns the number of iterations run.
func (s *splitter) lloyd(samples []int, cl, cr, wl, wr []float32, res *result) (int, *ConvergenceError) {
	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		var (
			nl, nr int
			score  float32
		)
		clear(wl)
		clear(wr)

		for _, id := range samples {
			row := s.m.Row(id)
			dl := distance.SquaredL2(row, cl)
			dr := distance.SquaredL2(row, cr)
			score += min(dl, dr)

			if dr < dl {
				res.right[nr] = id
				nr++
				distance.Accumulate(wr, row)
			} else {
				res.left[nl] = id
				nl++
				distance.Accumulate(wl, row)
			}
		}

		res.nl, res.nr, res.score = nl, nr, score

		centroid(wl, cl, nl)
		centroid(wr, cr, nr)

		if equal(wl, cl) && equal(wr, cr) {
			return iter + 1, nil
		}

		cl, wl = wl, cl
		cr, wr = wr, cr
	}

	return s.opts.MaxIterations, &ConvergenceError{
		Samples:    len(samples),
		Iterations: s.opts.MaxIterations,
	}
}

// mean writes the component-wise mean of the sample rows into w. It sums in
// float64 so that identical rows reproduce their value exactly.
func mean(w []float32, m *embedding.Matrix, samples []int) {
	sum := make([]float64, len(w))
	for _, id := range samples {
		for j, v := range m.Row(id) {
			sum[j] += float64(v)
		}
	}
	for j := range w {
		w[j] = float32(sum[j] / float64(len(samples)))
	}
}

// centroid turns the accumulated sum into a mean. An empty side keeps its
// previous centroid.
func centroid(sum, prev []float32, count int) {
	if count == 0 {
		copy(sum, prev)
		return
	}
	for j := range sum {
		sum[j] /= float32(count)
	}
}

func degenerate(cl, cr []float32) bool {
	for j := range cl {
		if !(float32(math.Abs(float64(cl[j]-cr[j]))) < degenerateEpsilon) {
			return false
		}
	}
	return true
}

// equal compares bit-exact; NaN never equals itself, so non-finite input
// runs into the iteration cap.
func equal(a, b []float32) bool {
	for j := range a {
		if a[j] != b[j] {
			return false
		}
	}
	return true
}

func (s *splitter) report(stats SplitStats) {
	if s.opts.OnSplit != nil {
		s.opts.OnSplit(stats)
	}
}
