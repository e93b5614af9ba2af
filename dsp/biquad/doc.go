// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters.
//
// Block processing runs through a kernel chosen for the running CPU on first
// use. [Kernel] reports which one was selected.
package biquad
