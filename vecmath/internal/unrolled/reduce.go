package unrolled

import "math"

// Sum returns the sum of x using four partial accumulators. The result may
// differ from a sequential sum in the last bits.
func Sum(x []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(x)
	i := 0
	for ; i+3 < n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < n; i++ {
		s0 += x[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// DotProduct returns sum(a[i] * b[i]) over the shorter length using four
// partial accumulators.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+3 < n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// MaxAbs returns the maximum absolute value in x, 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	var m0, m1, m2, m3 float64
	n := len(x)
	i := 0
	for ; i+3 < n; i += 4 {
		m0 = max(m0, math.Abs(x[i]))
		m1 = max(m1, math.Abs(x[i+1]))
		m2 = max(m2, math.Abs(x[i+2]))
		m3 = max(m3, math.Abs(x[i+3]))
	}
	for ; i < n; i++ {
		m0 = max(m0, math.Abs(x[i]))
	}
	return max(max(m0, m1), max(m2, m3))
}
