//go:build arm64

package cpu

// AMD64Level is the GOAMD64 microarchitecture level the binary was compiled
// for, or 0 on other architectures.
const AMD64Level = 0

// ARMv8-A makes FP and Advanced SIMD mandatory.
var staticFeatures = NewSet(ARM64FP, ARM64ASIMD)
