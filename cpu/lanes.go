package cpu

import (
	"strings"
	"unsafe"
)

// Lane is an element type that fits a SIMD register lane.
type Lane interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// SuggestedLanes returns an approximate number of T elements per SIMD
// vector for the features of s, or false when s offers no vector unit for T.
//
// The value is a guess for basic arithmetic. Scalable vector extensions (SVE,
// RISC-V V) are not taken into account.
func SuggestedLanes[T Lane](s Snapshot) (int, bool) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	isF32, isF64 := false, false
	switch any(zero).(type) {
	case float32:
		isF32 = true
	case float64:
		isF64 = true
	}

	v128, v256, v512 := 16/size, 32/size, 64/size

	switch s.Arch().isa() {
	case isaX86:
		avx512 := s.anyNamed("avx512", "")
		avx := s.Has(X86AVX) || s.Has(X86AVX2) || s.Has(X86FMA)
		sse2 := s.anyNamed("sse", "sse")
		sse := s.anyNamed("sse", "")

		switch {
		case avx512:
			return v512, true
		case s.Has(X86AVX2):
			return v256, true
		case (isF32 || isF64) && avx:
			return v256, true
		case sse2:
			return v128, true
		case isF32 && sse:
			return v128, true
		}
	case isaARM64:
		if s.Has(ARM64ASIMD) {
			return v128, true
		}
	case isaARM:
		// NEON on armv7 has no float64 lanes.
		if s.Has(ARMNEON) && !isF64 {
			return v128, true
		}
	case isaMIPS64:
		if s.Has(MIPS64MSA) {
			return v128, true
		}
	case isaPPC64:
		// AltiVec without VSX has no float64 lanes.
		if s.Has(PPC64VSX) || (s.Has(PPC64Altivec) && !isF64) {
			return v128, true
		}
	case isaS390X:
		if s.Has(S390XVX) {
			return v128, true
		}
	}
	return 0, false
}

// anyNamed reports whether s holds a feature whose name starts with prefix,
// ignoring the feature named except.
func (s Snapshot) anyNamed(prefix, except string) bool {
	for _, f := range s.Features() {
		name := f.String()
		if name != except && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
