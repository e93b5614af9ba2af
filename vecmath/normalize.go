package vecmath

import "github.com/cwbudde/algo-dispatch/target"

// normalizeFor builds a Normalize variant for code compiled against r. Its
// callees are bound once to the variants r guarantees, so the hot path makes
// no dispatch decisions.
func normalizeFor(r target.Requirement) normalizeFn {
	peakOf := maxAbsTable.For(r)
	scale := scaleBlockTable.For(r)
	return func(dst, src []float64) float64 {
		if len(dst) != len(src) {
			panic(errLength)
		}
		peak := peakOf(src)
		if peak == 0 {
			copy(dst, src)
			return 0
		}
		scale(dst, src, 1/peak)
		return peak
	}
}

const errLength = "vecmath: slice length mismatch"
