package unrolled

import "math"

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
		dst[i+1] = math.Sqrt(re[i+1]*re[i+1] + im[i+1]*im[i+1])
		dst[i+2] = math.Sqrt(re[i+2]*re[i+2] + im[i+2]*im[i+2])
		dst[i+3] = math.Sqrt(re[i+3]*re[i+3] + im[i+3]*im[i+3])
	}
	for ; i < n; i++ {
		dst[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
	}
}

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = re[i]*re[i] + im[i]*im[i]
		dst[i+1] = re[i+1]*re[i+1] + im[i+1]*im[i+1]
		dst[i+2] = re[i+2]*re[i+2] + im[i+2]*im[i+2]
		dst[i+3] = re[i+3]*re[i+3] + im[i+3]*im[i+3]
	}
	for ; i < n; i++ {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}
