// Package kernel holds the block-processing kernels of a biquad section and
// the registry they add themselves to.
package kernel

import "github.com/cwbudde/algo-dispatch/dispatch"

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessBlockFn processes buf in-place with one biquad section.
type ProcessBlockFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// Global is the default biquad kernel registry.
var Global = &dispatch.Registry[ProcessBlockFn]{}

// Kernel names.
const (
	NameGeneric  = "generic"
	NameUnrolled = "unrolled4"
)
