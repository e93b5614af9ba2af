package dispatch

import "github.com/cwbudde/algo-dispatch/target"

// For returns the variant code running under r may call directly (static
// dispatch): the first entry whose requirement r covers, or the default.
// No detection takes place and the cache is not consulted.
//
// A variant built for r typically binds its callees once:
//
//	var scale = scaleTable.For(target.MustParse("amd64/x86-64-v3"))
func (t *Table[F]) For(r target.Requirement) F {
	return t.variants[t.forIndex(r)].Fn
}

// ForEntry is like For but returns the whole entry.
func (t *Table[F]) ForEntry(r target.Requirement) Entry[F] {
	return t.variants[t.forIndex(r)]
}

func (t *Table[F]) forIndex(r target.Requirement) int {
	last := len(t.variants) - 1
	if last < 0 {
		panic(errZeroTable)
	}
	for i := range last {
		if r.Covers(t.variants[i].Requirement) {
			return i
		}
	}
	return last
}

// Variant returns the entry point named name. The default is named
// DefaultName.
func (t *Table[F]) Variant(name string) (F, bool) {
	for _, e := range t.variants {
		if e.Name == name {
			return e.Fn, true
		}
	}
	var zero F
	return zero, false
}
