//go:build !amd64 && !arm64

package cpu

// AMD64Level is the GOAMD64 microarchitecture level the binary was compiled
// for, or 0 on other architectures.
const AMD64Level = 0

var staticFeatures Set
