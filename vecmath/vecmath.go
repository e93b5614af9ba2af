package vecmath

import (
	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/vecmath/internal/unrolled"
)

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) { addBlockTable.Get()(dst, a, b) }

// AddBlockInPlace computes dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) { addBlockInPlaceTable.Get()(dst, src) }

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) { mulBlockTable.Get()(dst, a, b) }

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) { mulBlockInPlaceTable.Get()(dst, src) }

// ScaleBlock computes dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) { scaleBlockTable.Get()(dst, src, scale) }

// ScaleBlockInPlace computes dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) { scaleBlockInPlaceTable.Get()(dst, scale) }

// AddMulBlock computes dst[i] = (a[i] + b[i]) * scale.
func AddMulBlock(dst, a, b []float64, scale float64) { addMulBlockTable.Get()(dst, a, b, scale) }

// MulAddBlock computes dst[i] = a[i]*b[i] + c[i].
func MulAddBlock(dst, a, b, c []float64) { mulAddBlockTable.Get()(dst, a, b, c) }

// Sum returns the sum of x. Variants may reassociate, so results can differ
// in the last bits between CPUs.
func Sum(x []float64) float64 { return sumTable.Get()(x) }

// DotProduct returns sum(a[i] * b[i]) over the shorter of the two lengths.
func DotProduct(a, b []float64) float64 { return dotProductTable.Get()(a, b) }

// MaxAbs returns the largest absolute value in x, or 0 for an empty slice.
//
// Binaries built for GOAMD64=v3 or higher call the unrolled kernel without
// any check. Otherwise MaxAbs resolves on every call, so a forced snapshot
// installed with cpu.SetForced takes effect immediately.
func MaxAbs(x []float64) float64 {
	if cpu.AMD64Level >= 3 {
		return unrolled.MaxAbs(x)
	}
	return maxAbsTable.Direct()(x)
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) { magnitudeTable.Get()(dst, re, im) }

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) { powerTable.Get()(dst, re, im) }

// Normalize writes src scaled to a peak absolute value of 1 into dst and
// returns the original peak. A silent src is copied unchanged.
// Panics if lengths differ.
func Normalize(dst, src []float64) float64 { return normalizeTable.Get()(dst, src) }
