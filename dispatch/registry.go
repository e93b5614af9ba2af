package dispatch

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-dispatch/cpu"
)

// Registry collects entries registered from init functions, typically one
// per build-tagged file, and assembles them into a Table.
//
// Exactly one registered entry must carry the default requirement.
type Registry[F any] struct {
	mu      sync.RWMutex
	entries []Entry[F]
	sorted  bool
}

// Register adds an implementation entry.
func (r *Registry[F]) Register(entry Entry[F]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry s satisfies, or nil if none
// does. The default entry always matches.
func (r *Registry[F]) Lookup(s cpu.Snapshot) *Entry[F] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Requirement.Matches(s) {
			return entry
		}
	}

	return nil
}

// Build assembles the registered entries into a table named name. Entries
// are ordered by priority, highest first; ties go to the more specific
// requirement, then to registration order.
func (r *Registry[F]) Build(name string, opts ...Option) (*Table[F], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()

	var (
		fallback *Entry[F]
		rest     []Entry[F]
	)
	for i := range r.entries {
		e := r.entries[i]
		if !e.Requirement.IsDefault() {
			rest = append(rest, e)
			continue
		}
		if fallback != nil {
			return nil, fmt.Errorf("dispatch: registry %q: %q and %q: %w", name, fallback.Name, e.Name, ErrMultipleDefaults)
		}
		fallback = &r.entries[i]
	}
	if fallback == nil {
		return nil, fmt.Errorf("dispatch: registry %q: %w", name, ErrNoDefault)
	}

	return New(name, fallback.Fn, rest, opts...)
}

// MustBuild is like Build but panics on error.
func (r *Registry[F]) MustBuild(name string, opts ...Option) *Table[F] {
	t, err := r.Build(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// sortLocked orders the entries in place. r.mu must be held for writing.
func (r *Registry[F]) sortLocked() {
	if r.sorted {
		return
	}
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && before(key, r.entries[j]) {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// before reports whether a sorts strictly ahead of b.
func before[F any](a, b Entry[F]) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.Requirement.Specificity() > b.Requirement.Specificity()
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *Registry[F]) ListEntries() []Entry[F] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry[F], len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry[F]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
