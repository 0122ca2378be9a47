package simd

// Lanes is the row padding granularity the wide kernels are written for.
const Lanes = 8

// Kernel function pointers, set once at init by selectKernels.
var (
	kernelSquaredL2 = squaredL2Generic
	kernelAdd       = addGeneric
)

func selectKernels() {
	switch activeISA {
	case AVX2, AVX512, NEON:
		kernelSquaredL2 = squaredL2Wide
		kernelAdd = addWide
	default:
		kernelSquaredL2 = squaredL2Generic
		kernelAdd = addGeneric
	}
}

// SquaredL2 calculates the squared L2 distance.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func SquaredL2(a, b []float32) float32 {
	return kernelSquaredL2(a, b)
}

// AddInPlace adds src element-wise into dst.
//
// SAFETY: Assumes len(src) >= len(dst).
func AddInPlace(dst, src []float32) {
	kernelAdd(dst, src)
}

func squaredL2Generic(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}
	return distance
}

// squaredL2Wide keeps eight independent accumulators so the compiler can
// keep them in vector registers; rows padded to Lanes never hit the tail.
func squaredL2Wide(a, b []float32) float32 {
	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		d4 := a[i+4] - b[i+4]
		d5 := a[i+5] - b[i+5]
		d6 := a[i+6] - b[i+6]
		d7 := a[i+7] - b[i+7]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
		s4 += d4 * d4
		s5 += d5 * d5
		s6 += d6 * d6
		s7 += d7 * d7
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}
	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}

func addGeneric(dst, src []float32) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func addWide(dst, src []float32) {
	n := len(dst)
	src = src[:n]
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
		dst[i+2] += src[i+2]
		dst[i+3] += src[i+3]
		dst[i+4] += src[i+4]
		dst[i+5] += src[i+5]
		dst[i+6] += src[i+6]
		dst[i+7] += src[i+7]
	}
	for ; i < n; i++ {
		dst[i] += src[i]
	}
}
