//go:build ppc64 || ppc64le

package cpu

import (
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads golang.org/x/sys/cpu.PPC64.
//
// Go requires POWER8 on both endiannesses, so AltiVec, VSX and POWER8 are
// always reported.
func XSysProbe() Snapshot {
	p := xcpu.PPC64
	set := NewSet(PPC64Altivec, PPC64VSX, PPC64Power8)
	if p.IsPOWER9 {
		set = set.With(PPC64Power9)
	}
	if p.HasDARN {
		set = set.With(PPC64DARN)
	}
	if p.HasSCV {
		set = set.With(PPC64SCV)
	}
	return Snapshot{arch: Current, set: set}
}
