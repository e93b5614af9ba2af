// Package dispatch selects, once per process, the best implementation of a
// routine for the running CPU.
//
// A Table holds the implementations of one logical function: an ordered list
// of entries, each tagged with the target.Requirement it was built for, and a
// mandatory default that runs anywhere. Entries are listed most specific
// first; the first entry whose requirement the CPU satisfies wins.
//
// Three call strategies are supported:
//
//   - Indirect: t.Get()(args...). The first call detects features, resolves
//     and publishes the choice; every later call costs one atomic load and a
//     branch.
//     When the binary's compile target already satisfies the first entry,
//     nothing better can exist and detection is skipped.
//   - Direct: t.Select(snapshot) or t.Direct() resolve without touching the
//     cache. Hand-written branches on cpu.Has or the compile-time constant
//     cpu.AMD64Level are the fully inlined form of the same strategy.
//   - Static: t.For(r) returns the variant a caller already running under
//     requirement r may call directly, skipping detection. t.Variant(name)
//     looks a sibling variant up by name.
//
// Malformed tables are rejected by New. Resolution itself never fails: when
// nothing matches, or detection is unavailable, the default is chosen.
package dispatch
