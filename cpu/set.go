package cpu

import (
	"math/bits"
	"strings"
)

// Set is a fixed-size bitset over the feature catalog. The zero value is the
// empty set. Sets are comparable with ==.
type Set [2]uint64

// NewSet returns the set holding fs.
func NewSet(fs ...Feature) Set {
	var s Set
	for _, f := range fs {
		s = s.With(f)
	}
	return s
}

// Has reports whether f is in s.
func (s Set) Has(f Feature) bool {
	if !f.valid() {
		return false
	}
	return s[f/64]&(1<<(f%64)) != 0
}

// With returns s plus f.
func (s Set) With(f Feature) Set {
	if f.valid() {
		s[f/64] |= 1 << (f % 64)
	}
	return s
}

// Without returns s minus f.
func (s Set) Without(f Feature) Set {
	if f.valid() {
		s[f/64] &^= 1 << (f % 64)
	}
	return s
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	return Set{s[0] | o[0], s[1] | o[1]}
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	return Set{s[0] & o[0], s[1] & o[1]}
}

// Minus returns s \ o.
func (s Set) Minus(o Set) Set {
	return Set{s[0] &^ o[0], s[1] &^ o[1]}
}

// Contains reports whether every feature of o is in s.
func (s Set) Contains(o Set) bool {
	return o[0]&^s[0] == 0 && o[1]&^s[1] == 0
}

// Len returns the number of features in s.
func (s Set) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// IsEmpty reports whether s holds no feature.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Features returns the members of s in catalog order.
func (s Set) Features() []Feature {
	out := make([]Feature, 0, s.Len())
	for f := Feature(0); f < numFeatures; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Closure returns s extended with every feature transitively implied by its
// members.
func (s Set) Closure() Set {
	for {
		next := s
		for _, f := range s.Features() {
			for _, g := range catalog[f].implies {
				next = next.With(g)
			}
		}
		if next == s {
			return s
		}
		s = next
	}
}

// Implying returns s extended with every catalog feature whose closure
// intersects s.
func (s Set) Implying() Set {
	out := s
	for f := Feature(0); f < numFeatures; f++ {
		if !NewSet(f).Closure().Intersect(s).IsEmpty() {
			out = out.With(f)
		}
	}
	return out
}

// String joins the feature names with '+'.
func (s Set) String() string {
	fs := s.Features()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, "+")
}
