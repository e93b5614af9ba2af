package generic

import "math"

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Only the minimum length of the two slices is used.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	m := math.Abs(x[0])
	for i := 1; i < len(x); i++ {
		if v := math.Abs(x[i]); v > m {
			m = v
		}
	}
	return m
}
