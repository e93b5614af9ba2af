package vecmath

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/dispatch"
	"github.com/cwbudde/algo-dispatch/internal/testutil"
	"github.com/cwbudde/algo-dispatch/target"
)

const eps = 1e-12

var sizes = []int{0, 1, 3, 4, 7, 16, 17, 100, 1025}

func inputs(n int) (a, b, c []float64) {
	return testutil.DeterministicNoise(1, 2, n),
		testutil.DeterministicNoise(2, 3, n),
		testutil.DeterministicNoise(3, 1, n)
}

func TestAPI(t *testing.T) {
	a := []float64{1, -2, 3, -4, 5}
	b := []float64{2, 2, 2, 2, 2}
	c := []float64{1, 1, 1, 1, 1}
	dst := make([]float64, len(a))

	AddBlock(dst, a, b)
	assert.Equal(t, []float64{3, 0, 5, -2, 7}, dst)

	MulBlock(dst, a, b)
	assert.Equal(t, []float64{2, -4, 6, -8, 10}, dst)

	ScaleBlock(dst, a, -1)
	assert.Equal(t, []float64{-1, 2, -3, 4, -5}, dst)

	AddMulBlock(dst, a, b, 0.5)
	assert.Equal(t, []float64{1.5, 0, 2.5, -1, 3.5}, dst)

	MulAddBlock(dst, a, b, c)
	assert.Equal(t, []float64{3, -3, 7, -7, 11}, dst)

	copy(dst, a)
	AddBlockInPlace(dst, b)
	MulBlockInPlace(dst, b)
	ScaleBlockInPlace(dst, 0.25)
	assert.Equal(t, []float64{1.5, 0, 2.5, -1, 3.5}, dst)

	assert.Equal(t, 3.0, Sum(a))
	assert.Equal(t, 6.0, DotProduct(a, b))
	assert.Equal(t, 5.0, MaxAbs(a))

	Magnitude(dst[:2], []float64{3, 0}, []float64{4, -2})
	assert.Equal(t, []float64{5, 2}, dst[:2])
	Power(dst[:2], []float64{3, 0}, []float64{4, -2})
	assert.Equal(t, []float64{25, 4}, dst[:2])
}

func TestLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { AddBlock(make([]float64, 2), make([]float64, 2), make([]float64, 3)) })
	assert.Panics(t, func() { MulAddBlock(make([]float64, 2), make([]float64, 2), make([]float64, 2), nil) })
	assert.Panics(t, func() { Normalize(make([]float64, 2), make([]float64, 3)) })
}

// Every variant of every table must agree with the default, whichever CPU
// runs the test. All variants are safe to call on any CPU of their GOARCH.
func TestVariantsMatchDefault(t *testing.T) {
	for _, n := range sizes {
		a, b, c := inputs(n)

		t.Run(fmt.Sprintf("binary/n=%d", n), func(t *testing.T) {
			for _, tbl := range []*dispatch.Table[binaryFn]{addBlockTable, mulBlockTable, magnitudeTable, powerTable} {
				want := make([]float64, n)
				tbl.Default()(want, a, b)
				for _, e := range tbl.Entries() {
					got := make([]float64, n)
					e.Fn(got, a, b)
					testutil.RequireSliceNearlyEqual(t, got, want, eps)
				}
			}
		})

		t.Run(fmt.Sprintf("inplace/n=%d", n), func(t *testing.T) {
			for _, tbl := range []*dispatch.Table[inPlaceFn]{addBlockInPlaceTable, mulBlockInPlaceTable} {
				want := append([]float64(nil), a...)
				tbl.Default()(want, b)
				for _, e := range tbl.Entries() {
					got := append([]float64(nil), a...)
					e.Fn(got, b)
					testutil.RequireSliceNearlyEqual(t, got, want, eps)
				}
			}
		})

		t.Run(fmt.Sprintf("scale/n=%d", n), func(t *testing.T) {
			want := make([]float64, n)
			scaleBlockTable.Default()(want, a, 1.5)
			for _, e := range scaleBlockTable.Entries() {
				got := make([]float64, n)
				e.Fn(got, a, 1.5)
				testutil.RequireSliceNearlyEqual(t, got, want, eps)
			}
			for _, e := range scaleBlockInPlaceTable.Entries() {
				got := append([]float64(nil), a...)
				e.Fn(got, 1.5)
				testutil.RequireSliceNearlyEqual(t, got, want, eps)
			}
		})

		t.Run(fmt.Sprintf("fused/n=%d", n), func(t *testing.T) {
			want := make([]float64, n)
			addMulBlockTable.Default()(want, a, b, -0.5)
			for _, e := range addMulBlockTable.Entries() {
				got := make([]float64, n)
				e.Fn(got, a, b, -0.5)
				testutil.RequireSliceNearlyEqual(t, got, want, eps)
			}

			mulAddBlockTable.Default()(want, a, b, c)
			for _, e := range mulAddBlockTable.Entries() {
				got := make([]float64, n)
				e.Fn(got, a, b, c)
				testutil.RequireSliceNearlyEqual(t, got, want, eps)
			}
		})

		t.Run(fmt.Sprintf("reduce/n=%d", n), func(t *testing.T) {
			tol := eps * float64(n+1)
			for _, tbl := range []*dispatch.Table[reduceFn]{sumTable, maxAbsTable} {
				want := tbl.Default()(a)
				for _, e := range tbl.Entries() {
					assert.InDelta(t, want, e.Fn(a), tol, "%s/%s", tbl.Name(), e.Name)
				}
			}
			want := dotProductTable.Default()(a, b)
			for _, e := range dotProductTable.Entries() {
				assert.InDelta(t, want, e.Fn(a, b), tol, "%s", e.Name)
			}
		})
	}
}

func TestSelectBySnapshot(t *testing.T) {
	v2 := testutil.SnapshotOf("amd64/x86-64-v2")
	v3 := testutil.SnapshotOf("amd64/x86-64-v3")
	v4 := testutil.SnapshotOf("amd64/x86-64-v4")
	base := testutil.SnapshotOf("amd64/x86-64")
	neon := testutil.SnapshotOf("arm64+asimd")
	armv7 := cpu.MustSnapshot(cpu.ArchARM, cpu.ARMNEON)

	tests := []struct {
		name  string
		table interface {
			Name() string
		}
		pick func(cpu.Snapshot) string
		want map[string]cpu.Snapshot
	}{
		{
			name:  "accelerated",
			table: mulBlockTable,
			pick:  func(s cpu.Snapshot) string { return mulBlockTable.SelectEntry(s).Name },
			want: map[string]cpu.Snapshot{
				VariantAccelAMD64:    v4,
				VariantUnrolledAMD64: v2,
				VariantAccelARM64:    neon,
				dispatch.DefaultName: base,
			},
		},
		{
			name:  "unrolled",
			table: sumTable,
			pick:  func(s cpu.Snapshot) string { return sumTable.SelectEntry(s).Name },
			want: map[string]cpu.Snapshot{
				VariantUnrolledAMD64: v3,
				VariantUnrolledARM64: neon,
				dispatch.DefaultName: v2,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for want, s := range tt.want {
				assert.Equal(t, want, tt.pick(s), "%s on %s", tt.table.Name(), s)
			}
			assert.Equal(t, dispatch.DefaultName, tt.pick(armv7))
			assert.Equal(t, dispatch.DefaultName, tt.pick(cpu.Empty(cpu.ArchPPC64)))
		})
	}

	assert.Equal(t, VariantAccelAMD64, mulBlockTable.SelectEntry(v3).Name)
}

func TestNormalize(t *testing.T) {
	src := []float64{0.5, -2, 1}
	dst := make([]float64, len(src))

	peak := Normalize(dst, src)
	assert.Equal(t, 2.0, peak)
	assert.Equal(t, []float64{0.25, -1, 0.5}, dst)

	silent := []float64{0, 0, 0}
	dst = []float64{9, 9, 9}
	assert.Zero(t, Normalize(dst, silent))
	assert.Equal(t, silent, dst)

	assert.Zero(t, Normalize(nil, nil))
}

func TestNormalizeVariantsMatchDefault(t *testing.T) {
	src := testutil.DeterministicSine(440, 48000, 0.8, 257)
	want := make([]float64, len(src))
	wantPeak := normalizeTable.Default()(want, src)

	entries := normalizeTable.Entries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		got := make([]float64, len(src))
		assert.InDelta(t, wantPeak, e.Fn(got, src), eps, e.Name)
		testutil.RequireSliceNearlyEqual(t, got, want, eps)
		assert.InDelta(t, 1.0, MaxAbs(got), eps, e.Name)
	}
}

func TestNormalizeBindsCoveredVariants(t *testing.T) {
	assert.Equal(t, VariantUnrolledAMD64, maxAbsTable.ForEntry(amd64V3).Name)
	assert.Equal(t, VariantAccelAMD64, scaleBlockTable.ForEntry(amd64V3).Name)
	assert.Equal(t, VariantAccelARM64, scaleBlockTable.ForEntry(arm64ASIMD).Name)
	assert.Equal(t, dispatch.DefaultName, maxAbsTable.ForEntry(target.Default()).Name)
}

func TestMaxAbsFollowsForcedSnapshot(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)

	x := []float64{1, -7, 3}
	cpu.SetForced(cpu.Empty(cpu.Current))
	assert.Equal(t, dispatch.DefaultName, maxAbsTable.SelectEntry(cpu.Detect()).Name)
	assert.Equal(t, 7.0, MaxAbs(x))

	if cpu.Current == cpu.ArchAMD64 {
		cpu.SetForced(testutil.SnapshotOf("amd64/x86-64-v3"))
		assert.Equal(t, VariantUnrolledAMD64, maxAbsTable.SelectEntry(cpu.Detect()).Name)
		assert.Equal(t, 7.0, MaxAbs(x))
	}
}

func TestMaxAbsHonorsCompiledLevel(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)

	cpu.SetForced(cpu.Empty(cpu.Current))
	want := dispatch.DefaultName
	switch {
	case cpu.AMD64Level >= 3:
		want = VariantUnrolledAMD64
	case cpu.Current == cpu.ArchARM64:
		want = VariantUnrolledARM64
	}

	impl := describe(maxAbsTable, StrategyDirect)
	assert.Equal(t, want, impl.Variant)
	assert.Equal(t, 7.0, MaxAbs([]float64{1, -7, 3}))
}

func TestImplementations(t *testing.T) {
	impls := Implementations()
	require.Len(t, impls, 14)

	ops := make(map[string]Implementation, len(impls))
	for _, impl := range impls {
		ops[impl.Op] = impl
		assert.Contains(t, impl.Variants, impl.Variant, impl.Op)
		assert.Equal(t, dispatch.DefaultName, impl.Variants[len(impl.Variants)-1], impl.Op)
		assert.NotEmpty(t, impl.Requirement, impl.Op)
	}
	assert.Len(t, ops, 14)
	assert.Equal(t, StrategyDirect, ops["vecmath.MaxAbs"].Strategy)
	assert.Equal(t, StrategyStatic, ops["vecmath.Normalize"].Strategy)
	assert.Equal(t, StrategyIndirect, ops["vecmath.Sum"].Strategy)
	assert.Equal(t, dispatch.Resolved, sumTable.State())
}

func TestPublicAPIHandlesSpecialValues(t *testing.T) {
	x := []float64{math.Inf(-1), 1, 2}
	assert.True(t, math.IsInf(MaxAbs(x), 1))
	assert.True(t, math.IsNaN(Sum([]float64{math.NaN(), 1, 2, 3, 4})))
}

func BenchmarkMulBlock(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x, y, _ := inputs(n)
		dst := make([]float64, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				MulBlock(dst, x, y)
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	x := testutil.DeterministicNoise(5, 1, 4096)
	for _, e := range sumTable.Entries() {
		b.Run(e.Name, func(b *testing.B) {
			for b.Loop() {
				_ = e.Fn(x)
			}
		})
	}
}
