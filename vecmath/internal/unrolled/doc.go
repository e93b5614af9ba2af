// Package unrolled provides 4x-unrolled scalar kernels. They are plain Go,
// but the independent accumulators give superscalar cores with wide
// out-of-order windows (x86-64-v2 and later, ARMv8) more instruction-level
// parallelism than the generic loops.
package unrolled

const errLength = "vecmath: slice length mismatch"
