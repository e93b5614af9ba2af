package generic

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// ScaleBlockInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) {
	for i := range dst {
		dst[i] *= scale
	}
}

// AddMulBlock performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
func AddMulBlock(dst, a, b []float64, scale float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] = (a[i] + b[i]) * scale
	}
}

// MulAddBlock performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
func MulAddBlock(dst, a, b, c []float64) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic(errLength)
	}
	for i := range dst {
		dst[i] = a[i]*b[i] + c[i]
	}
}
