package dispatch

import (
	"github.com/cwbudde/algo-dispatch/internal/logging"
	"github.com/cwbudde/algo-dispatch/target"
)

// State is the resolution state of a table.
type State int

const (
	// Unresolved means no call has resolved the table yet.
	Unresolved State = iota

	// Resolving means at least one caller is querying the snapshot source
	// and none has published yet. It is transient and only reported for
	// diagnostics.
	Resolving

	// Resolved means the selection is published and final.
	Resolved
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Selection describes the variant a table committed to.
type Selection struct {
	Name        string
	Requirement target.Requirement
	Index       int
	Default     bool
}

// Get returns the entry point for the running CPU (indirect dispatch).
//
// The first call resolves the table and publishes the result; every later
// call is one atomic load and a branch. Concurrent first callers may each
// resolve, but exactly one result is published and all of them return it.
func (t *Table[F]) Get() F {
	if i := t.selected.Load(); i != 0 {
		return t.variants[i-1].Fn
	}
	return t.variants[t.publish()].Fn
}

// publish resolves and commits the selection, returning the committed index.
func (t *Table[F]) publish() int {
	if len(t.variants) == 0 {
		panic(errZeroTable)
	}
	idx := t.resolveCurrent()
	if t.selected.CompareAndSwap(0, int32(idx+1)) {
		e := t.variants[idx]
		t.log().LogResolved(t.name, e.Name, e.Requirement.String(), idx == len(t.variants)-1)
		return idx
	}
	return int(t.selected.Load()) - 1
}

// resolveCurrent resolves against the table's snapshot source, or returns
// the first entry when the compile-time guarantee already satisfies it.
func (t *Table[F]) resolveCurrent() int {
	if t.static {
		return 0
	}
	t.resolving.Add(1)
	defer t.resolving.Add(-1)
	return t.resolve(t.snapshot())
}

func (t *Table[F]) index() int {
	if i := t.selected.Load(); i != 0 {
		return int(i) - 1
	}
	return t.publish()
}

func (t *Table[F]) log() *logging.Logger {
	if t.logger != nil {
		return t.logger
	}
	return logging.Default()
}

// State reports the resolution state without resolving.
func (t *Table[F]) State() State {
	if t.selected.Load() != 0 {
		return Resolved
	}
	if t.resolving.Load() > 0 {
		return Resolving
	}
	return Unresolved
}

// Selected resolves the table if needed and describes the committed
// variant.
func (t *Table[F]) Selected() Selection {
	idx := t.index()
	e := t.variants[idx]
	return Selection{
		Name:        e.Name,
		Requirement: e.Requirement,
		Index:       idx,
		Default:     idx == len(t.variants)-1,
	}
}
