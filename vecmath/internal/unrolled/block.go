package unrolled

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace computes dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
		dst[i+2] += src[i+2]
		dst[i+3] += src[i+3]
	}
	for ; i < n; i++ {
		dst[i] += src[i]
	}
}

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] *= src[i]
		dst[i+1] *= src[i+1]
		dst[i+2] *= src[i+2]
		dst[i+3] *= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] *= src[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = src[i] * scale
		dst[i+1] = src[i+1] * scale
		dst[i+2] = src[i+2] * scale
		dst[i+3] = src[i+3] * scale
	}
	for ; i < n; i++ {
		dst[i] = src[i] * scale
	}
}

// ScaleBlockInPlace computes dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) {
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] *= scale
		dst[i+1] *= scale
		dst[i+2] *= scale
		dst[i+3] *= scale
	}
	for ; i < n; i++ {
		dst[i] *= scale
	}
}

// AddMulBlock computes dst[i] = (a[i] + b[i]) * scale.
func AddMulBlock(dst, a, b []float64, scale float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = (a[i] + b[i]) * scale
		dst[i+1] = (a[i+1] + b[i+1]) * scale
		dst[i+2] = (a[i+2] + b[i+2]) * scale
		dst[i+3] = (a[i+3] + b[i+3]) * scale
	}
	for ; i < n; i++ {
		dst[i] = (a[i] + b[i]) * scale
	}
}

// MulAddBlock computes dst[i] = a[i] * b[i] + c[i].
func MulAddBlock(dst, a, b, c []float64) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic(errLength)
	}
	n := len(dst)
	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}
