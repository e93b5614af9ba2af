// Package generic provides the pure Go default kernels of package vecmath.
// They run on every architecture and are the reference the other variants
// are tested against.
package generic

const errLength = "vecmath: slice length mismatch"
