//go:build mips64 || mips64le

package cpu

import (
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads golang.org/x/sys/cpu.MIPS64X.
func XSysProbe() Snapshot {
	if xcpu.MIPS64X.HasMSA {
		return Snapshot{arch: Current, set: NewSet(MIPS64MSA)}
	}
	return Empty(Current)
}
