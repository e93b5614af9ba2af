//go:build amd64 && !amd64.v2

package cpu

// AMD64Level is the GOAMD64 microarchitecture level the binary was compiled
// for, or 0 on other architectures. Branches on it are resolved at compile
// time.
const AMD64Level = 1

var staticFeatures = NewSet(X86SSE, X86SSE2)
