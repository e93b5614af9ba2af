package dispatch

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/internal/logging"
	"github.com/cwbudde/algo-dispatch/target"
)

// DefaultName is the name of a table's default variant.
const DefaultName = "default"

// Entry is one variant of a routine.
type Entry[F any] struct {
	// Name identifies the variant for Variant lookups and diagnostics.
	// Empty means the requirement string.
	Name string

	// Requirement is what the CPU must support to run Fn.
	Requirement target.Requirement

	// Priority orders entries inside a Registry. Tables built with New keep
	// the declared order and ignore it.
	Priority int

	// Fn is the entry point.
	Fn F
}

// NewEntry parses spec with target.Parse and builds an entry.
func NewEntry[F any](name, spec string, fn F) (Entry[F], error) {
	r, err := target.Parse(spec)
	if err != nil {
		return Entry[F]{}, fmt.Errorf("%w: %w", ErrInvalidRequirement, err)
	}
	return Entry[F]{Name: name, Requirement: r, Fn: fn}, nil
}

// MustEntry is like NewEntry but panics on error.
func MustEntry[F any](name, spec string, fn F) Entry[F] {
	e, err := NewEntry(name, spec, fn)
	if err != nil {
		panic(err)
	}
	return e
}

// Table holds the variants of one routine and caches the one selected for
// the running CPU.
//
// The zero value is not usable; build tables with New, MustNew or
// Registry.Build.
type Table[F any] struct {
	name string

	// variants holds the entries in declared order followed by the default.
	variants []Entry[F]

	snapshot func() cpu.Snapshot
	logger   *logging.Logger

	// selected is index+1 into variants; 0 means unresolved.
	selected atomic.Int32

	// resolving counts slow-path resolutions in flight.
	resolving atomic.Int32

	// static is set when the first entry is satisfied by the compile-time
	// guarantee. No snapshot can select anything else, so resolution skips
	// detection.
	static bool
}

// New validates entries and builds a table named name.
//
// Entries are kept in the order given, which must list more specific
// requirements first. fallback is the default entry point and must be
// non-nil. New rejects a table in which an entry has a nil function, a
// default requirement, a duplicate name or requirement, or a requirement
// that an earlier entry for the same architecture already covers.
func New[F any](name string, fallback F, entries []Entry[F], opts ...Option) (*Table[F], error) {
	if err := checkFunc(fallback); err != nil {
		if err == ErrNilEntryPoint {
			err = ErrNoDefault
		}
		return nil, fmt.Errorf("dispatch: table %q: %w", name, err)
	}

	variants := make([]Entry[F], 0, len(entries)+1)
	names := make(map[string]int, len(entries)+1)
	for i, e := range entries {
		if e.Name == "" {
			e.Name = e.Requirement.String()
		}
		if err := checkFunc(e.Fn); err != nil {
			return nil, fmt.Errorf("dispatch: table %q entry %d (%s): %w", name, i, e.Name, err)
		}
		if e.Requirement.IsDefault() {
			return nil, fmt.Errorf("dispatch: table %q entry %d (%s): %w", name, i, e.Name, ErrMultipleDefaults)
		}
		if j, ok := names[e.Name]; ok {
			return nil, fmt.Errorf("dispatch: table %q entries %d and %d named %q: %w", name, j, i, e.Name, ErrDuplicateEntry)
		}
		for j, prev := range variants {
			if prev.Requirement == e.Requirement {
				return nil, fmt.Errorf("dispatch: table %q entries %d and %d both require %s: %w",
					name, j, i, e.Requirement, ErrDuplicateEntry)
			}
			if e.Requirement.Covers(prev.Requirement) {
				return nil, fmt.Errorf("dispatch: table %q entry %d (%s) after %d (%s): %w",
					name, i, e.Requirement, j, prev.Requirement, ErrShadowedEntry)
			}
		}
		names[e.Name] = i
		variants = append(variants, e)
	}
	if _, ok := names[DefaultName]; ok {
		return nil, fmt.Errorf("dispatch: table %q: entry named %q: %w", name, DefaultName, ErrDuplicateEntry)
	}
	variants = append(variants, Entry[F]{Name: DefaultName, Fn: fallback})

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[F]{
		name:     name,
		variants: variants,
		snapshot: o.snapshot,
		logger:   o.logger,
		static:   len(variants) > 1 && variants[0].Requirement.Matches(o.guaranteed),
	}, nil
}

// MustNew is like New but panics on error. It suits package-level tables.
func MustNew[F any](name string, fallback F, entries []Entry[F], opts ...Option) *Table[F] {
	t, err := New(name, fallback, entries, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func checkFunc(fn any) error {
	v := reflect.ValueOf(fn)
	if !v.IsValid() {
		return ErrNilEntryPoint
	}
	if v.Kind() != reflect.Func {
		return fmt.Errorf("%w: %s", ErrNotFunc, v.Type())
	}
	if v.IsNil() {
		return ErrNilEntryPoint
	}
	return nil
}

// Name returns the table name.
func (t *Table[F]) Name() string { return t.name }

// Static reports whether the table resolves from the compile-time guarantee
// alone, without running detection.
func (t *Table[F]) Static() bool { return t.static }

// Len returns the number of variants, default included.
func (t *Table[F]) Len() int { return len(t.variants) }

// Entries returns the variants in resolution order, the default last.
func (t *Table[F]) Entries() []Entry[F] {
	out := make([]Entry[F], len(t.variants))
	copy(out, t.variants)
	return out
}

// Default returns the default entry point.
func (t *Table[F]) Default() F {
	return t.fallback().Fn
}

func (t *Table[F]) fallback() Entry[F] {
	if len(t.variants) == 0 {
		panic(errZeroTable)
	}
	return t.variants[len(t.variants)-1]
}
