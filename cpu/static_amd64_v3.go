//go:build amd64.v3 && !amd64.v4

package cpu

// AMD64Level is the GOAMD64 microarchitecture level the binary was compiled
// for, or 0 on other architectures. Branches on it are resolved at compile
// time.
const AMD64Level = 3

var staticFeatures = NewSet(
	X86SSE, X86SSE2, X86SSE3, X86SSSE3, X86SSE41, X86SSE42, X86POPCNT,
	X86AVX, X86AVX2, X86BMI1, X86BMI2, X86F16C, X86FMA,
)
