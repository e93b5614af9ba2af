// Package vecmath provides block operations over float64 slices with
// implementations selected for the running CPU.
//
// Every operation keeps a portable generic implementation as its default.
// Most operations dispatch through a cached table on first use. MaxAbs
// branches on the compile-time AMD64 level and otherwise re-resolves on each
// call. Normalize binds its callees statically per variant. Implementations
// reports what the running process selected.
//
// Binary operations panic when slice lengths differ. DotProduct uses the
// shorter length.
package vecmath
