package vecmath

import (
	"github.com/cwbudde/algo-dispatch/dispatch"
	"github.com/cwbudde/algo-dispatch/target"
	"github.com/cwbudde/algo-dispatch/vecmath/internal/accel"
	"github.com/cwbudde/algo-dispatch/vecmath/internal/generic"
	"github.com/cwbudde/algo-dispatch/vecmath/internal/unrolled"
)

type (
	binaryFn       func(dst, a, b []float64)
	inPlaceFn      func(dst, src []float64)
	scaleFn        func(dst, src []float64, scale float64)
	scaleInPlaceFn func(dst []float64, scale float64)
	addMulFn       func(dst, a, b []float64, scale float64)
	mulAddFn       func(dst, a, b, c []float64)
	reduceFn       func(x []float64) float64
	dotFn          func(a, b []float64) float64
	normalizeFn    func(dst, src []float64) float64
)

var (
	amd64V2    = target.MustParse("amd64/x86-64-v2")
	amd64V3    = target.MustParse("amd64/x86-64-v3")
	amd64AVX2  = target.MustParse("amd64+avx2")
	arm64ASIMD = target.MustParse("arm64+asimd")
)

// Variant names.
const (
	VariantUnrolledAMD64 = "unrolled-amd64"
	VariantUnrolledARM64 = "unrolled-arm64"
	VariantAccelAMD64    = "vecmath-amd64"
	VariantAccelARM64    = "vecmath-arm64"
)

// unrolledEntries lists the pure-Go unrolled kernel for wide out-of-order
// cores.
func unrolledEntries[F any](fn F) []dispatch.Entry[F] {
	return []dispatch.Entry[F]{
		{Name: VariantUnrolledAMD64, Requirement: amd64V3, Fn: fn},
		{Name: VariantUnrolledARM64, Requirement: arm64ASIMD, Fn: fn},
	}
}

// accelEntries prefers the algo-vecmath kernel where its SIMD paths engage
// and falls back to the unrolled kernel on older amd64 parts.
func accelEntries[F any](fast, fallback F) []dispatch.Entry[F] {
	return []dispatch.Entry[F]{
		{Name: VariantAccelAMD64, Requirement: amd64AVX2, Fn: fast},
		{Name: VariantAccelARM64, Requirement: arm64ASIMD, Fn: fast},
		{Name: VariantUnrolledAMD64, Requirement: amd64V2, Fn: fallback},
	}
}

var (
	addBlockTable = dispatch.MustNew("vecmath.AddBlock",
		binaryFn(generic.AddBlock), unrolledEntries(binaryFn(unrolled.AddBlock)))

	addBlockInPlaceTable = dispatch.MustNew("vecmath.AddBlockInPlace",
		inPlaceFn(generic.AddBlockInPlace),
		accelEntries(inPlaceFn(accel.AddBlockInPlace), inPlaceFn(unrolled.AddBlockInPlace)))

	mulBlockTable = dispatch.MustNew("vecmath.MulBlock",
		binaryFn(generic.MulBlock),
		accelEntries(binaryFn(accel.MulBlock), binaryFn(unrolled.MulBlock)))

	mulBlockInPlaceTable = dispatch.MustNew("vecmath.MulBlockInPlace",
		inPlaceFn(generic.MulBlockInPlace),
		accelEntries(inPlaceFn(accel.MulBlockInPlace), inPlaceFn(unrolled.MulBlockInPlace)))

	scaleBlockTable = dispatch.MustNew("vecmath.ScaleBlock",
		scaleFn(generic.ScaleBlock),
		accelEntries(scaleFn(accel.ScaleBlock), scaleFn(unrolled.ScaleBlock)))

	scaleBlockInPlaceTable = dispatch.MustNew("vecmath.ScaleBlockInPlace",
		scaleInPlaceFn(generic.ScaleBlockInPlace), unrolledEntries(scaleInPlaceFn(unrolled.ScaleBlockInPlace)))

	addMulBlockTable = dispatch.MustNew("vecmath.AddMulBlock",
		addMulFn(generic.AddMulBlock), unrolledEntries(addMulFn(unrolled.AddMulBlock)))

	mulAddBlockTable = dispatch.MustNew("vecmath.MulAddBlock",
		mulAddFn(generic.MulAddBlock), unrolledEntries(mulAddFn(unrolled.MulAddBlock)))

	sumTable = dispatch.MustNew("vecmath.Sum",
		reduceFn(generic.Sum), unrolledEntries(reduceFn(unrolled.Sum)))

	dotProductTable = dispatch.MustNew("vecmath.DotProduct",
		dotFn(generic.DotProduct), unrolledEntries(dotFn(unrolled.DotProduct)))

	maxAbsTable = dispatch.MustNew("vecmath.MaxAbs",
		reduceFn(generic.MaxAbs), unrolledEntries(reduceFn(unrolled.MaxAbs)))

	magnitudeTable = dispatch.MustNew("vecmath.Magnitude",
		binaryFn(generic.Magnitude),
		accelEntries(binaryFn(accel.Magnitude), binaryFn(unrolled.Magnitude)))

	powerTable = dispatch.MustNew("vecmath.Power",
		binaryFn(generic.Power),
		accelEntries(binaryFn(accel.Power), binaryFn(unrolled.Power)))

	normalizeTable = dispatch.MustNew("vecmath.Normalize",
		normalizeFor(target.Default()), []dispatch.Entry[normalizeFn]{
			{Name: VariantUnrolledAMD64, Requirement: amd64V3, Fn: normalizeFor(amd64V3)},
			{Name: VariantUnrolledARM64, Requirement: arm64ASIMD, Fn: normalizeFor(arm64ASIMD)},
		})
)
