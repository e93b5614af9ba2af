package generic

import "math"

// Magnitude computes magnitude from separate real and imaginary parts:
// dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic(errLength)
	}
	for i := range dst {
		r := re[i]
		m := im[i]
		dst[i] = math.Sqrt(r*r + m*m)
	}
}

// Power computes magnitude squared: dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic(errLength)
	}
	for i := range dst {
		r := re[i]
		m := im[i]
		dst[i] = r*r + m*m
	}
}
