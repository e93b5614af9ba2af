package cpu

import "fmt"

// Snapshot is an immutable record of the extensions available on one
// architecture family. Snapshots are comparable with ==.
type Snapshot struct {
	arch Arch
	set  Set
}

// NewSnapshot builds a snapshot for a. Every feature must belong to the
// namespace of a.
func NewSnapshot(a Arch, fs ...Feature) (Snapshot, error) {
	var set Set
	for _, f := range fs {
		if !f.ValidFor(a) {
			return Snapshot{}, fmt.Errorf("%w: %s on %s", ErrFeatureArch, f, a)
		}
		set = set.With(f)
	}
	return Snapshot{arch: a, set: set}, nil
}

// MustSnapshot is like NewSnapshot but panics on error.
func MustSnapshot(a Arch, fs ...Feature) Snapshot {
	s, err := NewSnapshot(a, fs...)
	if err != nil {
		panic(err)
	}
	return s
}

// SnapshotOf builds a snapshot from feature names (canonical or alias).
func SnapshotOf(a Arch, names ...string) (Snapshot, error) {
	fs, err := ParseFeatures(a, names...)
	if err != nil {
		return Snapshot{}, err
	}
	return NewSnapshot(a, fs...)
}

// Empty returns the snapshot with no features for a.
func Empty(a Arch) Snapshot {
	return Snapshot{arch: a}
}

// snapshotFromSet keeps only the members of set valid for a.
func snapshotFromSet(a Arch, set Set) Snapshot {
	var out Set
	for _, f := range set.Features() {
		if f.ValidFor(a) {
			out = out.With(f)
		}
	}
	return Snapshot{arch: a, set: out}
}

// Arch returns the architecture family.
func (s Snapshot) Arch() Arch { return s.arch }

// Set returns the feature set.
func (s Snapshot) Set() Set { return s.set }

// Has reports whether f is available.
func (s Snapshot) Has(f Feature) bool { return s.set.Has(f) }

// HasName reports whether the feature called name is available. Unknown names
// report false.
func (s Snapshot) HasName(name string) bool {
	f, ok := LookupFeature(s.arch, name)
	return ok && s.set.Has(f)
}

// Features returns the available features in catalog order.
func (s Snapshot) Features() []Feature { return s.set.Features() }

// Union returns s extended with the members of set valid for its arch.
func (s Snapshot) Union(set Set) Snapshot {
	return snapshotFromSet(s.arch, s.set.Union(set))
}

// Mask removes every feature of masked together with every feature that
// implies one of them.
func (s Snapshot) Mask(masked Set) Snapshot {
	return Snapshot{arch: s.arch, set: s.set.Minus(masked.Implying())}
}

// Without is Mask for individual features.
func (s Snapshot) Without(fs ...Feature) Snapshot {
	return s.Mask(NewSet(fs...))
}

// IsEmpty reports whether no feature is available.
func (s Snapshot) IsEmpty() bool { return s.set.IsEmpty() }

// String formats the snapshot as "arch+f1+f2".
func (s Snapshot) String() string {
	if s.set.IsEmpty() {
		return s.arch.String()
	}
	return s.arch.String() + "+" + s.set.String()
}
