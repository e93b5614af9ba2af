package dispatch

import "github.com/cwbudde/algo-dispatch/cpu"

// Resolve returns the entry point of t that s selects. It is a pure function
// of its arguments and does not touch t's cache.
func Resolve[F any](t *Table[F], s cpu.Snapshot) F {
	return t.Select(s)
}

// resolve scans the entries in declared order and returns the index of the
// first one whose requirement s satisfies, or the index of the default.
func (t *Table[F]) resolve(s cpu.Snapshot) int {
	last := len(t.variants) - 1
	if last < 0 {
		panic(errZeroTable)
	}
	for i := range last {
		if t.variants[i].Requirement.Matches(s) {
			return i
		}
	}
	return last
}

// Select returns the entry point s selects (direct dispatch). The result is
// not cached.
func (t *Table[F]) Select(s cpu.Snapshot) F {
	return t.variants[t.resolve(s)].Fn
}

// SelectEntry is like Select but returns the whole entry.
func (t *Table[F]) SelectEntry(s cpu.Snapshot) Entry[F] {
	return t.variants[t.resolve(s)]
}

// Direct resolves against the table's snapshot source on every call,
// bypassing the cache. A table whose first entry is guaranteed at compile
// time returns that entry without detection.
func (t *Table[F]) Direct() F {
	if t.static {
		return t.variants[0].Fn
	}
	return t.Select(t.snapshot())
}
