//go:build amd64.v4

package cpu

// AMD64Level is the GOAMD64 microarchitecture level the binary was compiled
// for, or 0 on other architectures. Branches on it are resolved at compile
// time.
const AMD64Level = 4

var staticFeatures = NewSet(
	X86SSE, X86SSE2, X86SSE3, X86SSSE3, X86SSE41, X86SSE42, X86POPCNT,
	X86AVX, X86AVX2, X86BMI1, X86BMI2, X86F16C, X86FMA,
	X86AVX512F, X86AVX512BW, X86AVX512CD, X86AVX512DQ, X86AVX512VL,
)
