// Package accel forwards to the assembly kernels of
// github.com/cwbudde/algo-vecmath. That package performs its own feature
// checks, so these wrappers are only registered for CPUs where its SIMD
// paths are known to engage.
package accel

import (
	algovecmath "github.com/cwbudde/algo-vecmath"
)

// AddBlockInPlace computes dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) { algovecmath.AddBlockInPlace(dst, src) }

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) { algovecmath.MulBlock(dst, a, b) }

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) { algovecmath.MulBlockInPlace(dst, src) }

// ScaleBlock computes dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) { algovecmath.ScaleBlock(dst, src, scale) }

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) { algovecmath.Magnitude(dst, re, im) }

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) { algovecmath.Power(dst, re, im) }
